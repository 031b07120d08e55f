package validation

import (
	"fmt"

	"github.com/iudanet/taskkeeper/internal/models"
)

const (
	// MaxTitleLen максимальная длина заголовка задачи
	MaxTitleLen = 200
	// MaxDescriptionLen максимальная длина описания задачи
	MaxDescriptionLen = 2000
)

// ValidateTask проверяет поля запроса создания/обновления задачи.
// Пустой status допустим, сервер подставит PENDING.
func ValidateTask(title, description, status string) Errors {
	var errs Errors

	if title == "" {
		errs.Add("title", "title cannot be empty")
	} else if len(title) > MaxTitleLen {
		errs.Add("title", fmt.Sprintf("title must not exceed %d characters", MaxTitleLen))
	}

	if len(description) > MaxDescriptionLen {
		errs.Add("description", fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLen))
	}

	if status != "" && !models.TaskStatus(status).Valid() {
		errs.Add("status", "status must be one of PENDING, IN_PROGRESS, COMPLETED, CANCELLED")
	}

	return errs
}
