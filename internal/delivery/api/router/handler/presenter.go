package handler

import (
	"time"

	"academia/internal/domain/entity"
	"academia/internal/usecase"

	"github.com/google/uuid"
)

// UserResponse is the private view of the authenticated user.
type UserResponse struct {
	ID              uuid.UUID         `json:"id"`
	Email           string            `json:"email"`
	Username        string            `json:"username"`
	FirstName       string            `json:"first_name"`
	LastName        string            `json:"last_name"`
	FullName        string            `json:"full_name"`
	Handle          *string           `json:"handle"`
	BirthDate       *string           `json:"birth_date"`
	Age             *int              `json:"age"`
	Country         string            `json:"country"`
	AvatarURL       string            `json:"avatar_url"`
	CoverURL        string            `json:"cover_url"`
	Biography       string            `json:"biography"`
	Phone           string            `json:"phone"`
	SocialLinks     map[string]string `json:"social_links"`
	Role            entity.Role       `json:"role"`
	ProfileComplete bool              `json:"profile_complete"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func newUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	resp := &UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Username:        u.Username,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		FullName:        u.FullName(),
		Age:             u.Age,
		Country:         u.Country,
		AvatarURL:       u.AvatarURL,
		CoverURL:        u.CoverURL,
		Biography:       u.Biography,
		Phone:           u.Phone,
		SocialLinks:     u.SocialLinks(),
		Role:            u.Role,
		ProfileComplete: u.ProfileComplete,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
	if u.Handle != "" {
		handle := u.Handle
		resp.Handle = &handle
	}
	if u.BirthDate != nil {
		birth := u.BirthDate.Format(dateLayout)
		resp.BirthDate = &birth
	}

	return resp
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ColorHex     string    `json:"color_hex"`
	Active       bool      `json:"active"`
	TotalCourses int       `json:"total_courses"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}

	return &CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		ColorHex:     c.ColorHex,
		Active:       c.Active,
		TotalCourses: c.TotalCourses,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func newCategoryResponses(categories []*entity.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, newCategoryResponse(c))
	}

	return out
}

// CategorySummary is embedded in course views.
type CategorySummary struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	ColorHex string `json:"color_hex"`
}

// InstructorSummary is embedded in course views.
type InstructorSummary struct {
	ID        uint64 `json:"id"`
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func newInstructorSummary(i *entity.Instructor) *InstructorSummary {
	if i == nil {
		return nil
	}

	summary := &InstructorSummary{ID: i.ID, FullName: i.FullName(), Specialty: i.Specialty}
	if i.User != nil {
		summary.AvatarURL = i.User.AvatarURL
	}

	return summary
}

// LessonResponse is the public view of a lesson.
type LessonResponse struct {
	ID                   uint64             `json:"id"`
	ModuleID             uint64             `json:"module_id"`
	Title                string             `json:"title"`
	Content              string             `json:"content"`
	ContentType          entity.ContentType `json:"content_type"`
	VideoURL             string             `json:"video_url"`
	DurationMinutes      int                `json:"duration_minutes"`
	DurationSeconds      int                `json:"duration_seconds"`
	TotalDurationSeconds int                `json:"total_duration_seconds"`
	Order                int                `json:"order"`
	IsFreePreview        bool               `json:"is_free_preview"`
	Active               bool               `json:"active"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

func newLessonResponse(l *entity.Lesson) *LessonResponse {
	if l == nil {
		return nil
	}

	return &LessonResponse{
		ID:                   l.ID,
		ModuleID:             l.ModuleID,
		Title:                l.Title,
		Content:              l.Content,
		ContentType:          l.ContentType,
		VideoURL:             l.VideoURL,
		DurationMinutes:      l.DurationMinutes,
		DurationSeconds:      l.DurationSeconds,
		TotalDurationSeconds: l.TotalDurationSeconds(),
		Order:                l.Order,
		IsFreePreview:        l.IsFreePreview,
		Active:               l.Active,
		CreatedAt:            l.CreatedAt,
		UpdatedAt:            l.UpdatedAt,
	}
}

func newLessonResponses(lessons []*entity.Lesson) []*LessonResponse {
	out := make([]*LessonResponse, 0, len(lessons))
	for _, l := range lessons {
		out = append(out, newLessonResponse(l))
	}

	return out
}

// ModuleResponse is the public view of a module with its lessons.
type ModuleResponse struct {
	ID              uint64            `json:"id"`
	CourseID        uint64            `json:"course_id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Order           int               `json:"order"`
	DurationMinutes *int              `json:"duration_minutes"`
	Expandable      bool              `json:"expandable"`
	Active          bool              `json:"active"`
	TotalLessons    int               `json:"total_lessons"`
	Lessons         []*LessonResponse `json:"lessons"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func newModuleResponse(m *entity.Module) *ModuleResponse {
	if m == nil {
		return nil
	}

	return &ModuleResponse{
		ID:              m.ID,
		CourseID:        m.CourseID,
		Title:           m.Title,
		Description:     m.Description,
		Order:           m.Order,
		DurationMinutes: m.DurationMinutes,
		Expandable:      m.Expandable,
		Active:          m.Active,
		TotalLessons:    m.TotalLessons(),
		Lessons:         newLessonResponses(m.Lessons),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func newModuleResponses(modules []*entity.Module) []*ModuleResponse {
	out := make([]*ModuleResponse, 0, len(modules))
	for _, m := range modules {
		out = append(out, newModuleResponse(m))
	}

	return out
}

// CourseResponse is the public view of a course. Modules is only present on detail views.
type CourseResponse struct {
	ID               uuid.UUID          `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	ShortDescription string             `json:"short_description"`
	Category         *CategorySummary   `json:"category"`
	Instructor       *InstructorSummary `json:"instructor"`
	CoverImageURL    string             `json:"cover_image_url"`
	IntroVideoURL    string             `json:"intro_video_url"`
	Modality         entity.Modality    `json:"modality"`
	Level            entity.Level       `json:"level"`
	DurationHours    *int               `json:"duration_hours"`
	Price            string             `json:"price"`
	IsFree           bool               `json:"is_free"`
	Rating           *string            `json:"rating"`
	Featured         bool               `json:"featured"`
	Active           bool               `json:"active"`
	TotalModules     int                `json:"total_modules"`
	TotalLessons     int                `json:"total_lessons"`
	TotalStudents    int                `json:"total_students"`
	Modules          []*ModuleResponse  `json:"modules,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

func newCourseResponse(c *entity.Course, withModules bool) *CourseResponse {
	if c == nil {
		return nil
	}

	resp := &CourseResponse{
		ID:               c.UUID,
		Title:            c.Title,
		Description:      c.Description,
		ShortDescription: c.ShortDescription,
		Instructor:       newInstructorSummary(c.Instructor),
		CoverImageURL:    c.CoverImageURL,
		IntroVideoURL:    c.IntroVideoURL,
		Modality:         c.Modality,
		Level:            c.Level,
		DurationHours:    c.DurationHours,
		Price:            c.Price.StringFixed(2),
		IsFree:           c.IsFree,
		Featured:         c.Featured,
		Active:           c.Active,
		TotalModules:     c.TotalModules(),
		TotalLessons:     c.TotalLessons(),
		TotalStudents:    c.TotalStudents(),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
	if c.Category != nil {
		resp.Category = &CategorySummary{ID: c.Category.ID, Name: c.Category.Name, ColorHex: c.Category.ColorHex}
	}
	if c.Rating != nil {
		rating := c.Rating.StringFixed(2)
		resp.Rating = &rating
	}
	if withModules {
		resp.Modules = newModuleResponses(c.Modules)
	}

	return resp
}

func newCourseResponses(courses []*entity.Course) []*CourseResponse {
	out := make([]*CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, newCourseResponse(c, false))
	}

	return out
}

// CourseStatsResponse reports the aggregate numbers of one course.
type CourseStatsResponse struct {
	CourseID                uuid.UUID `json:"course_id"`
	Title                   string    `json:"title"`
	TotalModules            int       `json:"total_modules"`
	TotalLessons            int       `json:"total_lessons"`
	TotalStudents           int       `json:"total_students"`
	TotalDurationSeconds    int       `json:"total_duration_seconds"`
	FreePreviewLessons      int       `json:"free_preview_lessons"`
	InstructorActiveCourses int64     `json:"instructor_active_courses"`
	CompletionRate          float64   `json:"completion_rate"`
	ActiveStudents          int       `json:"active_students"`
}

func newCourseStatsResponse(stats *usecase.CourseStats) *CourseStatsResponse {
	resp := &CourseStatsResponse{
		TotalModules:            stats.TotalModules,
		TotalLessons:            stats.TotalLessons,
		TotalStudents:           stats.TotalStudents,
		TotalDurationSeconds:    stats.TotalDurationSeconds,
		FreePreviewLessons:      stats.FreePreviewLessons,
		InstructorActiveCourses: stats.InstructorActiveCourses,
		CompletionRate:          stats.CompletionRate,
		ActiveStudents:          stats.ActiveStudents,
	}
	if stats.Course != nil {
		resp.CourseID = stats.Course.UUID
		resp.Title = stats.Course.Title
	}

	return resp
}

// CompositeWriteResponse reports a course tree write.
type CompositeWriteResponse struct {
	Course         *CourseResponse `json:"course"`
	ModulesCreated int             `json:"modules_created"`
	ModulesDeleted int64           `json:"modules_deleted"`
	LessonsCreated int             `json:"lessons_created"`
}

// ModuleWithLessonsResponse reports a module created together with its lessons.
type ModuleWithLessonsResponse struct {
	Module         *ModuleResponse `json:"module"`
	LessonsCreated int             `json:"lessons_created"`
}

// InstructorResponse is the view of an instructor and its user account.
type InstructorResponse struct {
	ID                        uint64            `json:"id"`
	User                      *UserResponse     `json:"user,omitempty"`
	FullName                  string            `json:"full_name"`
	Specialty                 string            `json:"specialty"`
	ExtendedBio               string            `json:"extended_bio"`
	ExperienceYears           int               `json:"experience_years"`
	ProfessionalTitle         string            `json:"professional_title"`
	Certifications            string            `json:"certifications"`
	SocialLinks               map[string]string `json:"social_links"`
	InstructorProfileComplete bool              `json:"instructor_profile_complete"`
	CreatedAt                 time.Time         `json:"created_at"`
	UpdatedAt                 time.Time         `json:"updated_at"`
}

func newInstructorResponse(i *entity.Instructor, withUser bool) *InstructorResponse {
	if i == nil {
		return nil
	}

	resp := &InstructorResponse{
		ID:                        i.ID,
		FullName:                  i.FullName(),
		Specialty:                 i.Specialty,
		ExtendedBio:               i.ExtendedBio,
		ExperienceYears:           i.ExperienceYears,
		ProfessionalTitle:         i.ProfessionalTitle,
		Certifications:            i.Certifications,
		SocialLinks:               i.SocialLinks(),
		InstructorProfileComplete: i.ProfileComplete(),
		CreatedAt:                 i.CreatedAt,
		UpdatedAt:                 i.UpdatedAt,
	}
	if withUser {
		resp.User = newUserResponse(i.User)
	}

	return resp
}

func newInstructorResponses(instructors []*entity.Instructor, withUser bool) []*InstructorResponse {
	out := make([]*InstructorResponse, 0, len(instructors))
	for _, i := range instructors {
		out = append(out, newInstructorResponse(i, withUser))
	}

	return out
}

// SessionResponse describes one active refresh token without revealing it.
type SessionResponse struct {
	ID         uuid.UUID  `json:"id"`
	DeviceInfo string     `json:"device_info"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
}

func newSessionResponses(tokens []*entity.RefreshToken) []*SessionResponse {
	out := make([]*SessionResponse, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, &SessionResponse{
			ID:         t.ID,
			DeviceInfo: t.DeviceInfo,
			CreatedAt:  t.CreatedAt,
			LastUsedAt: t.LastUsedAt,
			ExpiresAt:  t.ExpiresAt,
		})
	}

	return out
}
