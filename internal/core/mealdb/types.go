package mealdb

import (
	"fmt"
	"strings"

	"recipe-suggester/internal/pkg/common"
)

// maxIngredientSlots 資料來源將食材攤平為固定 20 組欄位
const maxIngredientSlots = 20

// filterResponse filter.php 的回應；meals 為 null 表示查無結果
type filterResponse struct {
	Meals []struct {
		ID        string `json:"idMeal"`
		Title     string `json:"strMeal"`
		Thumbnail string `json:"strMealThumb"`
	} `json:"meals"`
}

// lookupResponse lookup.php 的回應
// 紀錄欄位數量多且多為可空字串，先解析為 map 再逐欄取值
type lookupResponse struct {
	Meals []map[string]any `json:"meals"`
}

// candidateFromRecord 將原始紀錄轉換為候選食譜
// strIngredient1..20 / strMeasure1..20 折疊為有序的食材清單，略過空白欄位
func candidateFromRecord(record map[string]any) *common.RecipeCandidate {
	candidate := &common.RecipeCandidate{
		ID:           stringField(record, "idMeal"),
		Title:        stringField(record, "strMeal"),
		Thumbnail:    stringField(record, "strMealThumb"),
		Category:     stringField(record, "strCategory"),
		Area:         stringField(record, "strArea"),
		Instructions: stringField(record, "strInstructions"),
		VideoURL:     stringField(record, "strYoutube"),
		SourceURL:    stringField(record, "strSource"),
		Tags:         parseTags(stringField(record, "strTags")),
	}

	for i := 1; i <= maxIngredientSlots; i++ {
		name := strings.TrimSpace(stringField(record, fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		candidate.Ingredients = append(candidate.Ingredients, common.IngredientMeasure{
			Name:    name,
			Measure: strings.TrimSpace(stringField(record, fmt.Sprintf("strMeasure%d", i))),
		})
	}

	return candidate
}

// stringField 取出字串欄位；null 與缺漏欄位回傳空字串
func stringField(record map[string]any, key string) string {
	if v, ok := record[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// parseTags 解析逗號分隔的標籤字串
func parseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
