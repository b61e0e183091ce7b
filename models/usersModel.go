package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents a user role
type Role struct {
	ID          int64        `gorm:"primaryKey;column:id" json:"id"`
	Name        string       `gorm:"size:50;not null;unique;index;column:name" json:"name"`
	Description string       `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time    `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions"`
}

func (Role) TableName() string {
	return "roles"
}

// SeedRoles inserts initial roles into the database
func SeedRoles(db *gorm.DB) error {
	initialRoles := []Role{
		{Name: "Admin", Description: "Full access across all hospitals"},
		{Name: "Doctor", Description: "Can manage appointments and upload reports for their hospital"},
		{Name: "Staff", Description: "Can manage appointments and transactions for their hospital"},
		{Name: "Patient", Description: "Can book appointments and view personal records"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, role := range initialRoles {
			if err := tx.FirstOrCreate(&role, Role{Name: role.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// User represents a user in the system. HospitalID is the facility
// affiliation and is only meaningful for Doctor and Staff roles.
type User struct {
	ID         int64     `gorm:"primaryKey;column:id" json:"id"`
	Username   string    `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	Email      string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Password   string    `gorm:"size:255;not null;column:password" json:"password"`
	FullName   string    `gorm:"size:255;column:full_name" json:"full_name"`
	Phone      string    `gorm:"size:30;column:phone" json:"phone"`
	HospitalID string    `gorm:"column:hospital_id;index" json:"hospital_id"`
	PictureURL string    `gorm:"column:picture_url" json:"picture_url"`
	RoleID     int64     `gorm:"index;not null;column:role_id" json:"role_id"`
	Role       Role      `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"role"`
	CreatedAt  time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Permission represents a permission in the system
type Permission struct {
	ID          int64  `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"size:100;not null;unique;index;column:name" json:"name"`
	Description string `gorm:"type:text;column:description" json:"description"`
}

func (Permission) TableName() string {
	return "permissions"
}

// SeedPermissions inserts initial permissions into the database
func SeedPermissions(db *gorm.DB) error {
	initialPermissions := []Permission{
		{Name: "manage_hospitals", Description: "Create, update, or delete hospitals"},
		{Name: "manage_transactions", Description: "Mark, edit, or delete transactions"},
		{Name: "manage_appointments", Description: "Create or update appointments"},
		{Name: "upload_reports", Description: "Upload and edit diagnostic reports"},
		{Name: "view_patients", Description: "View the patient roster"},
		{Name: "book_appointments", Description: "Book appointments and pay for services"},
		{Name: "view_self", Description: "View personal records"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, permission := range initialPermissions {
			if err := tx.FirstOrCreate(&permission, Permission{Name: permission.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RolePermission represents the association between roles and permissions
type RolePermission struct {
	ID           int64 `gorm:"primaryKey;column:id" json:"id"`
	RoleID       int64 `gorm:"index;column:role_id" json:"role_id"`
	PermissionID int64 `gorm:"index;column:permission_id" json:"permission_id"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// SeedRolePermissions inserts initial role permissions into the database
func SeedRolePermissions(db *gorm.DB) error {
	initialRolePermissions := []RolePermission{
		{RoleID: 1, PermissionID: 1}, // Admin: manage_hospitals
		{RoleID: 1, PermissionID: 2}, // Admin: manage_transactions
		{RoleID: 1, PermissionID: 3}, // Admin: manage_appointments
		{RoleID: 1, PermissionID: 5}, // Admin: view_patients
		{RoleID: 2, PermissionID: 3}, // Doctor: manage_appointments
		{RoleID: 2, PermissionID: 4}, // Doctor: upload_reports
		{RoleID: 3, PermissionID: 2}, // Staff: manage_transactions
		{RoleID: 3, PermissionID: 3}, // Staff: manage_appointments
		{RoleID: 3, PermissionID: 4}, // Staff: upload_reports
		{RoleID: 4, PermissionID: 6}, // Patient: book_appointments
		{RoleID: 4, PermissionID: 7}, // Patient: view_self
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, rolePermission := range initialRolePermissions {
			if err := tx.FirstOrCreate(&rolePermission, RolePermission{RoleID: rolePermission.RoleID, PermissionID: rolePermission.PermissionID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
