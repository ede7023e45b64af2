// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	stumodel "sekolahku_backend/internals/features/school/students/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type GuardianDTO struct {
	UserID   uuid.UUID `json:"user_id" validate:"required"`
	Relation *string   `json:"relation,omitempty"` // ayah|ibu|wali
}

type StudentCreateDTO struct {
	StudentName      string       `json:"student_name" validate:"required,max=100"`
	StudentLevelCode string       `json:"student_level_code" validate:"required,max=20"`
	StudentClassID   *uuid.UUID   `json:"student_class_id,omitempty"`
	StudentJoinedAt  time.Time    `json:"student_joined_at" validate:"required"`
	StudentEndedAt   *time.Time   `json:"student_ended_at,omitempty"`
	StudentIsTrial   bool         `json:"student_is_trial"`
	StudentGuardians []GuardianDTO `json:"student_guardians,omitempty" validate:"omitempty,dive"`
}

// Update (partial)
type StudentUpdateDTO struct {
	StudentName      *string    `json:"student_name,omitempty" validate:"omitempty,max=100"`
	StudentLevelCode *string    `json:"student_level_code,omitempty" validate:"omitempty,max=20"`
	StudentClassID   *uuid.UUID `json:"student_class_id,omitempty"`
	StudentEndedAt   *time.Time `json:"student_ended_at,omitempty"`
	StudentIsTrial   *bool      `json:"student_is_trial,omitempty"`
	StudentStatus    *string    `json:"student_status,omitempty" validate:"omitempty,oneof=active inactive"`
}

type StudentGuardianResponse struct {
	StudentGuardianID uuid.UUID `json:"student_guardian_id"`
	UserID            uuid.UUID `json:"user_id"`
	Relation          *string   `json:"relation,omitempty"`
}

type StudentResponse struct {
	StudentID        uuid.UUID                 `json:"student_id"`
	StudentName      string                    `json:"student_name"`
	StudentLevelCode string                    `json:"student_level_code"`
	StudentClassID   *uuid.UUID                `json:"student_class_id,omitempty"`
	StudentJoinedAt  time.Time                 `json:"student_joined_at"`
	StudentEndedAt   *time.Time                `json:"student_ended_at,omitempty"`
	StudentIsTrial   bool                      `json:"student_is_trial"`
	StudentStatus    string                    `json:"student_status"` // active|inactive
	StudentGuardians []StudentGuardianResponse `json:"student_guardians,omitempty"`
	StudentCreatedAt time.Time                 `json:"student_created_at"`
	StudentUpdatedAt time.Time                 `json:"student_updated_at"`
	StudentDeletedAt *time.Time                `json:"student_deleted_at,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func ToStudentResponse(m stumodel.Student) StudentResponse {
	guardians := make([]StudentGuardianResponse, 0, len(m.StudentGuardians))
	for _, g := range m.StudentGuardians {
		guardians = append(guardians, StudentGuardianResponse{
			StudentGuardianID: g.StudentGuardianID,
			UserID:            g.StudentGuardianUserID,
			Relation:          g.StudentGuardianRelation,
		})
	}
	return StudentResponse{
		StudentID:        m.StudentID,
		StudentName:      m.StudentName,
		StudentLevelCode: m.StudentLevelCode,
		StudentClassID:   m.StudentClassID,
		StudentJoinedAt:  m.StudentJoinedAt,
		StudentEndedAt:   m.StudentEndedAt,
		StudentIsTrial:   m.StudentIsTrial,
		StudentStatus:    string(m.StudentStatus),
		StudentGuardians: guardians,
		StudentCreatedAt: m.StudentCreatedAt,
		StudentUpdatedAt: m.StudentUpdatedAt,
		StudentDeletedAt: toPtrTimeFromDeletedAt(m.StudentDeletedAt),
	}
}

func ToStudentResponses(list []stumodel.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToStudentResponse(v))
	}
	return out
}

func StudentCreateDTOToModel(d StudentCreateDTO) stumodel.Student {
	guardians := make([]stumodel.StudentGuardian, 0, len(d.StudentGuardians))
	for _, g := range d.StudentGuardians {
		guardians = append(guardians, stumodel.StudentGuardian{
			StudentGuardianUserID:   g.UserID,
			StudentGuardianRelation: g.Relation,
		})
	}
	return stumodel.Student{
		StudentName:      d.StudentName,
		StudentLevelCode: d.StudentLevelCode,
		StudentClassID:   d.StudentClassID,
		StudentJoinedAt:  d.StudentJoinedAt,
		StudentEndedAt:   d.StudentEndedAt,
		StudentIsTrial:   d.StudentIsTrial,
		StudentStatus:    stumodel.StudentStatusActive, // default active
		StudentGuardians: guardians,
	}
}

// ApplyStudentUpdate: partial update; join date tidak disentuh lewat sini.
func ApplyStudentUpdate(m *stumodel.Student, d StudentUpdateDTO) {
	if d.StudentName != nil {
		m.StudentName = *d.StudentName
	}
	if d.StudentLevelCode != nil {
		m.StudentLevelCode = *d.StudentLevelCode
	}
	if d.StudentClassID != nil {
		m.StudentClassID = d.StudentClassID
	}
	if d.StudentEndedAt != nil {
		m.StudentEndedAt = d.StudentEndedAt
	}
	if d.StudentIsTrial != nil {
		m.StudentIsTrial = *d.StudentIsTrial
	}
	if d.StudentStatus != nil {
		m.StudentStatus = stumodel.StudentStatus(*d.StudentStatus)
	}
}

////////////////////////////////////////////////////////////////////////////////
// SMALL UTILS
////////////////////////////////////////////////////////////////////////////////

func toPtrTimeFromDeletedAt(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		return &d.Time
	}
	return nil
}
