package requests

type FindOpenBusinesses struct {
	Time string `json:"time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}
