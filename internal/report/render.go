package report

import (
	"github.com/kube-rca/incident-reporter/internal/model"
	"github.com/kube-rca/incident-reporter/internal/template"
)

// Renderer - 리포트의 Markdown/HTML 두 형태를 생성
type Renderer struct {
	converter *HTMLConverter
}

func NewRenderer() *Renderer {
	return &Renderer{converter: NewHTMLConverter()}
}

func (r *Renderer) Render(data template.ReportData) (model.Report, error) {
	body := template.RenderBody(template.MarkdownBody, data)

	bodyHTML, err := r.converter.Convert(body)
	if err != nil {
		return model.Report{}, err
	}

	return model.Report{
		Title:        data.Title,
		IncidentDate: data.IncidentDate,
		GeneratedAt:  data.GeneratedAt,
		Markdown:     template.RenderMarkdown(data),
		HTML:         template.RenderDocument(data, bodyHTML),
	}, nil
}
