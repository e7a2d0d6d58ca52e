// Package model defines the admin identity and the six content resource
// models persisted by the portfolio API.
package model

import (
	"database/sql/driver"

	"portfolio/util/common"

	"github.com/goccy/go-json"
)

// StringList is a []string stored as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	return string(data), err
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return common.NewErrorf("cannot scan %T into StringList", src)
	}
}

// SkillItem is one entry inside a skill category.
type SkillItem struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillItems is a []SkillItem stored as a JSON column.
type SkillItems []SkillItem

func (s SkillItems) Value() (driver.Value, error) {
	if s == nil {
		s = SkillItems{}
	}
	data, err := json.Marshal(s)
	return string(data), err
}

func (s *SkillItems) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = SkillItems{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return common.NewErrorf("cannot scan %T into SkillItems", src)
	}
}

// Admin is the single administrator identity. Password always holds a bcrypt
// hash once persisted, never the plaintext.
type Admin struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-"`
	Email    string `json:"email"`
}

type Project struct {
	Id           int        `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Title        string     `json:"title" form:"title"`
	Description  string     `json:"description" form:"description"`
	Technologies StringList `json:"technologies" form:"technologies" gorm:"type:text"`
	GithubUrl    string     `json:"githubUrl" form:"githubUrl"`
	LiveUrl      string     `json:"liveUrl" form:"liveUrl"`
	Image        string     `json:"image" form:"image"`
	Featured     bool       `json:"featured" form:"featured"`
	Order        int        `json:"order" form:"order" gorm:"column:sort_order"`
	CreatedAt    int64      `json:"createdAt"`
	UpdatedAt    int64      `json:"updatedAt"`
}

type Skill struct {
	Id        int        `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Category  string     `json:"category" form:"category"`
	Items     SkillItems `json:"items" form:"items" gorm:"type:text"`
	Order     int        `json:"order" form:"order" gorm:"column:sort_order"`
	CreatedAt int64      `json:"createdAt"`
	UpdatedAt int64      `json:"updatedAt"`
}

type Experience struct {
	Id           int        `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Title        string     `json:"title" form:"title"`
	Company      string     `json:"company" form:"company"`
	Location     string     `json:"location" form:"location"`
	StartDate    string     `json:"startDate" form:"startDate"`
	EndDate      string     `json:"endDate" form:"endDate"`
	Current      bool       `json:"current" form:"current"`
	Description  string     `json:"description" form:"description"`
	Technologies StringList `json:"technologies" form:"technologies" gorm:"type:text"`
	Order        int        `json:"order" form:"order" gorm:"column:sort_order"`
	CreatedAt    int64      `json:"createdAt"`
	UpdatedAt    int64      `json:"updatedAt"`
}

type Certification struct {
	Id        int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Title     string `json:"title" form:"title"`
	Issuer    string `json:"issuer" form:"issuer"`
	Date      string `json:"date" form:"date"`
	Url       string `json:"url" form:"url"`
	Image     string `json:"image" form:"image"`
	Order     int    `json:"order" form:"order" gorm:"column:sort_order"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// About is a singleton: at most one row exists.
type About struct {
	Id        int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Bio       string `json:"bio" form:"bio"`
	Image     string `json:"image" form:"image"`
	Resume    string `json:"resume" form:"resume"`
	Email     string `json:"email" form:"email"`
	Location  string `json:"location" form:"location"`
	UpdatedAt int64  `json:"updatedAt"`
}

// Hero is a singleton: at most one row exists.
type Hero struct {
	Id        int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Greeting  string `json:"greeting" form:"greeting"`
	Name      string `json:"name" form:"name"`
	Title     string `json:"title" form:"title"`
	Subtitle  string `json:"subtitle" form:"subtitle"`
	Image     string `json:"image" form:"image"`
	UpdatedAt int64  `json:"updatedAt"`
}
