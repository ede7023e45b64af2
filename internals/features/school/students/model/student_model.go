// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — status siswa
// =========================================================

type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "active"
	StudentStatusInactive StudentStatus = "inactive"
)

// =========================================================
// MODEL students
// =========================================================

type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	StudentName string `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`

	// Jenjang (kode level → tarif dasar di fee_schedules)
	StudentLevelCode string `gorm:"column:student_level_code;type:varchar(20);not null;index:ix_students_level" json:"student_level_code"`

	// FK → classes(class_id) (optional)
	StudentClassID *uuid.UUID `gorm:"column:student_class_id;type:uuid;index" json:"student_class_id,omitempty"`

	// Masa pendaftaran
	StudentJoinedAt time.Time  `gorm:"column:student_joined_at;type:date;not null" json:"student_joined_at"`
	StudentEndedAt  *time.Time `gorm:"column:student_ended_at;type:date" json:"student_ended_at,omitempty"`

	// Trial & status
	StudentIsTrial bool          `gorm:"column:student_is_trial;not null;default:false" json:"student_is_trial"`
	StudentStatus  StudentStatus `gorm:"column:student_status;type:varchar(20);not null;default:'active';index:ix_students_status" json:"student_status"`

	// Timestamps (eksplisit)
	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`

	// Relasi wali (dimuat dengan Preload saat billing run)
	StudentGuardians []StudentGuardian `gorm:"foreignKey:StudentGuardianStudentID;references:StudentID" json:"student_guardians,omitempty"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) (err error) {
	m.StudentUpdatedAt = time.Now()
	return nil
}

// =========================================================
// MODEL student_guardians — satu baris per wali
// =========================================================

type StudentGuardian struct {
	StudentGuardianID uuid.UUID `gorm:"column:student_guardian_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_guardian_id"`

	// FK → students(student_id)
	StudentGuardianStudentID uuid.UUID `gorm:"column:student_guardian_student_id;type:uuid;not null;index;uniqueIndex:uniq_student_guardian,priority:1" json:"student_guardian_student_id"`

	// FK → users(id) di sistem auth eksternal
	StudentGuardianUserID uuid.UUID `gorm:"column:student_guardian_user_id;type:uuid;not null;uniqueIndex:uniq_student_guardian,priority:2" json:"student_guardian_user_id"`

	// ayah|ibu|wali (bebas)
	StudentGuardianRelation *string `gorm:"column:student_guardian_relation;type:varchar(20)" json:"student_guardian_relation,omitempty"`

	StudentGuardianCreatedAt time.Time `gorm:"column:student_guardian_created_at;not null;default:now()" json:"student_guardian_created_at"`
}

func (StudentGuardian) TableName() string { return "student_guardians" }
