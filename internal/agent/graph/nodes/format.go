package nodes

import (
	"fmt"
	"strings"

	"github.com/variable-maker/server/internal/agent/model"
)

const (
	noneLabel        = "없음"
	textResultHeader = "텍스트 분석 결과:"
)

// FormatWordResult renders the single result line of the word branch.
func FormatWordResult(original, translated string, abbreviations []string, isKorean bool, style model.CaseStyle) string {
	abbrevText := noneLabel
	if len(abbreviations) > 0 {
		abbrevText = strings.Join(abbreviations, ", ")
	}
	if isKorean {
		return fmt.Sprintf("'%s' → '%s' 약어 (%s): %s", original, translated, style, abbrevText)
	}
	return fmt.Sprintf("'%s' 약어 (%s): %s", original, style, abbrevText)
}

// FormatTextResult prefixes the processed concept lines with the fixed header.
func FormatTextResult(processed string) string {
	return textResultHeader + "\n" + processed
}

// FormatError is the reply appended to the conversation when the pipeline fails.
func FormatError(err error) string {
	return fmt.Sprintf("오류가 발생했습니다: %v\n다시 시도해주세요.", err)
}

// CaseStyleMenu lists the selectable styles, marking the current one.
func CaseStyleMenu(current model.CaseStyle) string {
	var b strings.Builder
	b.WriteString("변수명 케이스 스타일을 선택하세요 (:case <번호|이름>):\n")
	for _, o := range model.CaseStyleOptions() {
		marker := "  "
		if o.Style == current {
			marker = "➡ "
		}
		fmt.Fprintf(&b, "%s%d. %s\n", marker, o.Number, o.Label())
	}
	return strings.TrimRight(b.String(), "\n")
}

// HelpMessage is the reply to ":help".
func HelpMessage() string {
	return strings.Join([]string{
		"Variable Maker 사용법:",
		"",
		"단어 입력 (약어 생성):",
		"- 예시: 중취감, international, 데이터베이스",
		"- 결과: 한국어는 영어 번역 후 약어 생성",
		"- 케이스 스타일: camelCase, snake_case, PascalCase, kebab-case, CONSTANT_CASE",
		"",
		"문장/텍스트 입력 (변수명 추출):",
		"- 예시: 중소기업 취업자 감면을 변수로 만들어주세요",
		"- 팁: 핵심 비즈니스 용어에 집중합니다",
		"- 팁: '변수', '만들어주세요' 같은 요청 문구는 무시됩니다",
		"",
		"명령어:",
		"- :quit: 프로그램 종료",
		"- :help: 이 메시지 출력",
		"- :case [번호|이름]: 케이스 스타일 변경",
		"- :history: 현재 대화의 메시지 수 확인",
		"- :clear: 현재 대화 기록 삭제",
	}, "\n")
}
