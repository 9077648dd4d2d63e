// Package model holds the GORM persistence models.
package model

// All returns every persistence model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&InstructorModel{},
		&CategoryModel{},
		&CourseModel{},
		&ModuleModel{},
		&LessonModel{},
	}
}
