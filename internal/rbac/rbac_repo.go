package rbac

import "gorm.io/gorm"

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetEmployeeRoles(storeID string) ([]EmployeeRoleRow, error)
	GetRolePermissions(storeID string) ([]RolePermissionRow, error)
	ListRoles(storeID string) ([]RoleRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type RoleRow struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StoreID     string `gorm:"type:uuid"`
	Name        string
	Description string
}

type EmployeeRoleRow struct {
	EmployeeID string
	RoleID     string
}

type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}

func (r *repository) GetEmployeeRoles(storeID string) ([]EmployeeRoleRow, error) {
	var result []EmployeeRoleRow
	err := r.db.
		Table("employee_roles er").
		Select("er.employee_id, er.role_id").
		Joins("JOIN roles ON roles.id = er.role_id").
		Where("roles.store_id = ?", storeID).
		Scan(&result).Error
	return result, err
}

func (r *repository) GetRolePermissions(storeID string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow
	err := r.db.
		Table("role_permissions rp").
		Select("rp.role_id, p.resource, p.action").
		Joins("JOIN permissions p ON p.id = rp.permission_id").
		Joins("JOIN roles ON roles.id = rp.role_id").
		Where("roles.store_id = ?", storeID).
		Scan(&result).Error
	return result, err
}

func (r *repository) ListRoles(storeID string) ([]RoleRow, error) {
	var result []RoleRow
	err := r.db.
		Table("roles").
		Where("store_id = ?", storeID).
		Order("name ASC").
		Scan(&result).Error
	return result, err
}
