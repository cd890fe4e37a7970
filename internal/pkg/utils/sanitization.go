package utils

import (
	"openhours-service/internal/app/models"
	"openhours-service/internal/pkg/dto/requests"
	"strings"
)

const byteOrderMark = "\ufeff"

func SanitizeBusiness(input *models.Business) {
	input.Name = strings.TrimSpace(strings.TrimPrefix(input.Name, byteOrderMark))
	input.Hours = strings.TrimSpace(input.Hours)
}

func SanitizeFindOpenBusinessesRequest(input *requests.FindOpenBusinesses) {
	input.Time = strings.TrimSpace(input.Time)
}
