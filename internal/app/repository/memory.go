package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"backend/internal/app/ds"
)

// MemoryStore - реализация Store в памяти для юнит-тестов.
// Семантика выборок и сортировок повторяет Repository.
type MemoryStore struct {
	mu           sync.RWMutex
	services     map[uint]*ds.Service
	testimonials map[uint]*ds.Testimonial
	submissions  map[uint]*ds.ContactSubmission
	users        map[uint]*ds.User
	nextID       uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		services:     make(map[uint]*ds.Service),
		testimonials: make(map[uint]*ds.Testimonial),
		submissions:  make(map[uint]*ds.ContactSubmission),
		users:        make(map[uint]*ds.User),
		nextID:       1,
	}
}

func (m *MemoryStore) allocID() uint {
	id := m.nextID
	m.nextID++
	return id
}

// ============ Услуги ============

func (m *MemoryStore) ListActiveServices() ([]ds.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ds.Service, 0, len(m.services))
	for _, s := range m.services {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (m *MemoryStore) GetActiveServiceByID(id uint) (*ds.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.services[id]
	if !ok || !s.IsActive {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *MemoryStore) CreateService(svc *ds.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if svc.ID == 0 {
		svc.ID = m.allocID()
	}
	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	cp := *svc
	m.services[svc.ID] = &cp
	return nil
}

func (m *MemoryStore) UpdateService(id uint, upd ServiceUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.services[id]
	if !ok {
		return ErrNotFound
	}
	if upd.Title != nil {
		s.Title = *upd.Title
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.Icon != nil {
		s.Icon = *upd.Icon
	}
	if upd.Order != nil {
		s.SortOrder = *upd.Order
	}
	if upd.IsActive != nil {
		s.IsActive = *upd.IsActive
	}
	s.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) DeactivateService(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.services[id]
	if !ok {
		return ErrNotFound
	}
	s.IsActive = false
	s.UpdatedAt = time.Now()
	return nil
}

// ============ Отзывы ============

func (m *MemoryStore) ListActiveTestimonials(featuredOnly bool) ([]ds.Testimonial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ds.Testimonial, 0, len(m.testimonials))
	for _, t := range m.testimonials {
		if !t.IsActive {
			continue
		}
		if featuredOnly && !t.IsFeatured {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsFeatured != out[j].IsFeatured {
			return out[i].IsFeatured
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MemoryStore) GetTestimonialByID(id uint) (*ds.Testimonial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.testimonials[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *MemoryStore) CreateTestimonial(t *ds.Testimonial) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.ID == 0 {
		t.ID = m.allocID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	cp := *t
	m.testimonials[t.ID] = &cp
	return nil
}

func (m *MemoryStore) UpdateTestimonial(id uint, upd TestimonialUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.testimonials[id]
	if !ok {
		return ErrNotFound
	}
	if upd.ClientName != nil {
		t.ClientName = *upd.ClientName
	}
	if upd.ClientCompany != nil {
		t.ClientCompany = *upd.ClientCompany
	}
	if upd.ClientPosition != nil {
		t.ClientPosition = *upd.ClientPosition
	}
	if upd.TestimonialText != nil {
		t.TestimonialText = *upd.TestimonialText
	}
	if upd.Rating != nil {
		t.Rating = *upd.Rating
	}
	if upd.IsFeatured != nil {
		t.IsFeatured = *upd.IsFeatured
	}
	if upd.IsActive != nil {
		t.IsActive = *upd.IsActive
	}
	return nil
}

func (m *MemoryStore) UpdateTestimonialImage(id uint, image string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.testimonials[id]
	if !ok {
		return ErrNotFound
	}
	t.ClientImage = &image
	return nil
}

// ============ Обращения ============

func (m *MemoryStore) CreateSubmission(sub *ds.ContactSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sub.ID == 0 {
		sub.ID = m.allocID()
	}
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	cp := *sub
	m.submissions[sub.ID] = &cp
	return nil
}

func (m *MemoryStore) ListSubmissions(filter ContactFilter) ([]ds.ContactSubmission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	search := strings.ToLower(filter.Search)

	out := make([]ds.ContactSubmission, 0, len(m.submissions))
	for _, sub := range m.submissions {
		if filter.Status != "" && sub.Status != filter.Status {
			continue
		}
		if search != "" {
			if !strings.Contains(strings.ToLower(sub.Name), search) &&
				!strings.Contains(strings.ToLower(sub.Email), search) &&
				!strings.Contains(strings.ToLower(sub.Message), search) {
				continue
			}
		}
		out = append(out, *sub)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *MemoryStore) GetSubmissionByID(id uint) (*ds.ContactSubmission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sub, ok := m.submissions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *sub
	return &cp, nil
}

func (m *MemoryStore) UpdateSubmissionStatus(id uint, status string) (*ds.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub, ok := m.submissions[id]
	if !ok {
		return nil, ErrNotFound
	}
	sub.Status = status
	sub.UpdatedAt = time.Now()
	cp := *sub
	return &cp, nil
}

// ============ Пользователи ============

func (m *MemoryStore) GetUserByID(id uint) (*ds.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *MemoryStore) GetUserByLogin(login string) (*ds.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Login == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) UserExistsByLogin(login string) (bool, error) {
	_, err := m.GetUserByLogin(login)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *MemoryStore) CreateUser(user *ds.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user.ID == 0 {
		user.ID = m.allocID()
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}
