package suggestion

import "strings"

// Normalize 正規化食材名稱：小寫並去除前後空白
// 比對前必須對使用者輸入與食譜食材名稱對稱地套用
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Matches 雙向子字串比對，兩邊都必須是正規化後的名稱
// 刻意採寬鬆語意以容忍單複數與部分命名差異（"tomato" 可對上 "tomatoes"），
// 代價是會有誤判（"egg" 會對上 "eggplant"）；此行為是對外可觀察的契約，不可改為嚴格相等
func Matches(candidateName, selectedName string) bool {
	if candidateName == "" || selectedName == "" {
		return false
	}
	return strings.Contains(candidateName, selectedName) || strings.Contains(selectedName, candidateName)
}

// queryTerm 取正規化名稱的第一個空白分隔詞作為搜尋關鍵字
// 多詞食材只用第一個詞查詢，可能過寬或過窄，但為既定的查詢策略
func queryTerm(normalized string) string {
	fields := strings.Fields(normalized)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
