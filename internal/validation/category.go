package validation

import (
	"fmt"
	"regexp"
)

// ColorPattern определяет hex-формат цвета категории: #RGB или #RRGGBB
var ColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// MaxCategoryNameLen максимальная длина имени категории
const MaxCategoryNameLen = 100

// ValidateCategory проверяет поля запроса создания/обновления категории.
// Пустой color допустим, сервер подставит значение по умолчанию.
func ValidateCategory(name, color string) Errors {
	var errs Errors

	if name == "" {
		errs.Add("name", "name cannot be empty")
	} else if len(name) > MaxCategoryNameLen {
		errs.Add("name", fmt.Sprintf("name must not exceed %d characters", MaxCategoryNameLen))
	}

	if color != "" && !ColorPattern.MatchString(color) {
		errs.Add("color", "color must be a hex value like #RRGGBB")
	}

	return errs
}
