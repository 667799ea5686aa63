package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Application - отклик кандидата на вакансию. JobID ссылается на Job.ID
// обычной строкой, существование вакансии не проверяется.
type Application struct {
	BaseModel
	JobID     *string `gorm:"column:job_id;index"`
	Applicant *string `gorm:"index"`
	Status    *string
	Fields    datatypes.JSONMap
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	// Job заполняется при обогащении и не сохраняется
	Job *JobSummary `gorm:"-"`
}

const (
	ApplicationKeyJobID     = "jobId"
	ApplicationKeyApplicant = "applicant"
	ApplicationKeyStatus    = "status"
)

func (a *Application) columns() map[string]**string {
	return map[string]**string{
		ApplicationKeyJobID:     &a.JobID,
		ApplicationKeyApplicant: &a.Applicant,
		ApplicationKeyStatus:    &a.Status,
	}
}

// UnmarshalJSON принимает любой JSON объект. _id от клиента игнорируется.
func (a *Application) UnmarshalJSON(data []byte) error {
	raw, err := decodeDocument(data)
	if err != nil {
		return err
	}
	*a = Application{}
	a.Fields = splitDocument(raw, a.columns(), IDKey)
	return nil
}

func (a Application) MarshalJSON() ([]byte, error) {
	columns := map[string]*string{
		ApplicationKeyJobID:     a.JobID,
		ApplicationKeyApplicant: a.Applicant,
		ApplicationKeyStatus:    a.Status,
	}
	// Поля вакансии перекрывают одноименные ключи отклика
	if a.Job != nil {
		columns[JobKeyCompany] = a.Job.Company
		columns[JobKeyTitle] = a.Job.Title
		columns[JobKeyCompanyLogo] = a.Job.CompanyLogo
	}
	return json.Marshal(mergeDocument(a.ID, a.Fields, columns))
}
