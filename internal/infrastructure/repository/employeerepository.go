package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quartermaster/internal/domain/employee"
	"quartermaster/internal/infrastructure/persistence/models"
	"quartermaster/internal/shared/logger"
)

// EmployeeRepositoryImpl implements the employee.Repository interface
type EmployeeRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewEmployeeRepository creates a new employee repository instance
func NewEmployeeRepository(db *gorm.DB, logger logger.Interface) employee.Repository {
	return &EmployeeRepositoryImpl{db: db, logger: logger}
}

// Upsert creates or updates an employee keyed by its provider ID
func (r *EmployeeRepositoryImpl) Upsert(ctx context.Context, e *employee.Employee) error {
	model := employeeToModel(e)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert employee", "employee_id", e.ID(), "error", err)
		return fmt.Errorf("failed to upsert employee: %w", err)
	}
	return nil
}

// GetByID retrieves an employee by ID; (nil, nil) when not found
func (r *EmployeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	var model models.EmployeeModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get employee", "employee_id", id, "error", err)
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employeeToDomain(&model)
}

// List retrieves all employees ordered by ID for stable results
func (r *EmployeeRepositoryImpl) List(ctx context.Context) ([]*employee.Employee, error) {
	var records []models.EmployeeModel
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		r.logger.Errorw("failed to list employees", "error", err)
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]*employee.Employee, 0, len(records))
	for i := range records {
		e, err := employeeToDomain(&records[i])
		if err != nil {
			r.logger.Warnw("skipping unmappable employee row", "employee_id", records[i].ID, "error", err)
			continue
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func employeeToModel(e *employee.Employee) *models.EmployeeModel {
	return &models.EmployeeModel{
		ID:         e.ID(),
		FirstName:  e.FirstName(),
		LastName:   e.LastName(),
		Email:      e.Email(),
		Department: e.Department(),
		JobTitle:   e.JobTitle(),
		Status:     e.Status().String(),
		AddressID:  e.AddressID(),
		CreatedAt:  e.CreatedAt(),
		UpdatedAt:  e.UpdatedAt(),
	}
}

func employeeToDomain(m *models.EmployeeModel) (*employee.Employee, error) {
	return employee.ReconstructEmployee(
		m.ID,
		m.FirstName,
		m.LastName,
		m.Email,
		m.Department,
		m.JobTitle,
		employee.Status(m.Status),
		m.AddressID,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
