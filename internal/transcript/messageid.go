package transcript

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidMessageID = errors.New("invalid message id")

// permalink의 p-prefix ID는 microseconds 단위 (p1753168536411769)
const microDigits = 6

// CLI 인자로 받은 message ID를 Slack thread timestamp로 변환
//
//	p1753168536411769 -> 1753168536.411769
//	1753168536.411769 -> 그대로
//	1753168536        -> 그대로
func ThreadTS(messageID string) (string, error) {
	id := strings.TrimSpace(messageID)
	if id == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidMessageID)
	}

	if strings.HasPrefix(id, "p") {
		digits := id[1:]
		if digits == "" || !isDigits(digits) {
			return "", fmt.Errorf("%w: %q", ErrInvalidMessageID, messageID)
		}
		if len(digits) <= 10 {
			return digits, nil
		}
		// 1,000,000으로 나누는 것과 동일 (소수점 이동)
		split := len(digits) - microDigits
		return digits[:split] + "." + digits[split:], nil
	}

	if _, err := strconv.ParseFloat(id, 64); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidMessageID, messageID)
	}
	return id, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
