package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Job - вакансия. В колонках лежат ключи, по которым идет фильтрация или
// которые копируются при обогащении. Остальные ключи хранятся в Fields.
type Job struct {
	BaseModel
	HREmail     *string `gorm:"column:hr_email;index"`
	Company     *string
	Title       *string
	CompanyLogo *string `gorm:"column:company_logo"`
	Fields      datatypes.JSONMap

	// ApplicationCount добавляется при чтении списка работодателя
	// и не сохраняется.
	ApplicationCount *int64 `gorm:"-"`
}

const (
	JobKeyHREmail          = "hr_email"
	JobKeyCompany          = "company"
	JobKeyTitle            = "title"
	JobKeyCompanyLogo      = "company_logo"
	JobKeyApplicationCount = "application_count"
)

func (j *Job) columns() map[string]**string {
	return map[string]**string{
		JobKeyHREmail:     &j.HREmail,
		JobKeyCompany:     &j.Company,
		JobKeyTitle:       &j.Title,
		JobKeyCompanyLogo: &j.CompanyLogo,
	}
}

// UnmarshalJSON принимает любой JSON объект. _id от клиента игнорируется,
// идентификатор выдает хранилище.
func (j *Job) UnmarshalJSON(data []byte) error {
	raw, err := decodeDocument(data)
	if err != nil {
		return err
	}
	*j = Job{}
	j.Fields = splitDocument(raw, j.columns(), IDKey)
	return nil
}

func (j Job) MarshalJSON() ([]byte, error) {
	doc := mergeDocument(j.ID, j.Fields, map[string]*string{
		JobKeyHREmail:     j.HREmail,
		JobKeyCompany:     j.Company,
		JobKeyTitle:       j.Title,
		JobKeyCompanyLogo: j.CompanyLogo,
	})
	if j.ApplicationCount != nil {
		doc[JobKeyApplicationCount] = *j.ApplicationCount
	}
	return json.Marshal(doc)
}

// Summary возвращает поля вакансии, копируемые в отклики
func (j *Job) Summary() *JobSummary {
	return &JobSummary{
		Company:     j.Company,
		Title:       j.Title,
		CompanyLogo: j.CompanyLogo,
	}
}

// JobSummary - данные вакансии, добавляемые к отклику при чтении
type JobSummary struct {
	Company     *string
	Title       *string
	CompanyLogo *string
}
