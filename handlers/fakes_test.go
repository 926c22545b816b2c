package handlers

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"sort"
	"time"

	"github.com/Lieutenant23/Construapp/models"
	"github.com/Lieutenant23/Construapp/repository"
)

// fakeDB is an in-memory implementation of every repository interface.
type fakeDB struct {
	users       map[int64]*models.User
	projects    map[int64]*models.Project
	expenses    map[int64]*models.Expense
	attachments map[int64]*models.Attachment
	lastID      int64
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:       make(map[int64]*models.User),
		projects:    make(map[int64]*models.Project),
		expenses:    make(map[int64]*models.Expense),
		attachments: make(map[int64]*models.Attachment),
	}
}

func (f *fakeDB) nextID() int64 {
	f.lastID++
	return f.lastID
}

// --- UserRepository ---

func (f *fakeDB) CreateUser(user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrEmailTaken
		}
	}
	user.ID = f.nextID()
	user.CreatedAt = time.Now().UTC()
	f.users[user.ID] = user
	return nil
}

func (f *fakeDB) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) GetUserByID(id int64) (*models.User, error) {
	return f.users[id], nil
}

// --- ProjectRepository ---

func (f *fakeDB) CreateProject(project *models.Project) error {
	project.ID = f.nextID()
	project.CreatedAt = time.Now().UTC()
	if project.Status == "" {
		project.Status = models.StatusAtivo
	}
	f.projects[project.ID] = project
	return nil
}

func (f *fakeDB) ListProjectsByUser(userID int64) ([]*models.Project, error) {
	var projects []*models.Project
	for _, p := range f.projects {
		if p.UserID == userID {
			projects = append(projects, p)
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID > projects[j].ID })
	return projects, nil
}

func (f *fakeDB) GetProjectByID(id int64) (*models.Project, error) {
	return f.projects[id], nil
}

func (f *fakeDB) UpdateProject(project *models.Project) error {
	f.projects[project.ID] = project
	return nil
}

func (f *fakeDB) DeleteProjectCascade(projectID int64) error {
	for id, e := range f.expenses {
		if e.ProjectID != projectID {
			continue
		}
		for aid, a := range f.attachments {
			if a.ExpenseID == id {
				delete(f.attachments, aid)
			}
		}
		delete(f.expenses, id)
	}
	delete(f.projects, projectID)
	return nil
}

// --- ExpenseRepository ---

func (f *fakeDB) CreateExpense(expense *models.Expense) error {
	expense.ID = f.nextID()
	expense.CreatedAt = time.Now().UTC()
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeDB) GetExpenseByID(id int64) (*models.Expense, error) {
	return f.expenses[id], nil
}

func (f *fakeDB) ListExpensesByProject(projectID int64) ([]*models.Expense, error) {
	var expenses []*models.Expense
	for _, e := range f.expenses {
		if e.ProjectID == projectID {
			copied := *e
			copied.Attachments, _ = f.ListAttachmentsByExpense(e.ID)
			expenses = append(expenses, &copied)
		}
	}
	sort.Slice(expenses, func(i, j int) bool { return expenses[i].ID > expenses[j].ID })
	return expenses, nil
}

func (f *fakeDB) UpdateExpense(expense *models.Expense) error {
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeDB) DeleteExpenseCascade(expenseID int64) error {
	for aid, a := range f.attachments {
		if a.ExpenseID == expenseID {
			delete(f.attachments, aid)
		}
	}
	delete(f.expenses, expenseID)
	return nil
}

// --- AttachmentRepository ---

func (f *fakeDB) CreateAttachment(attachment *models.Attachment) error {
	attachment.ID = f.nextID()
	attachment.CreatedAt = time.Now().UTC()
	if attachment.Tipo == "" {
		attachment.Tipo = models.TipoNota
	}
	f.attachments[attachment.ID] = attachment
	return nil
}

func (f *fakeDB) GetAttachmentByID(id int64) (*models.Attachment, error) {
	return f.attachments[id], nil
}

func (f *fakeDB) ListAttachmentsByExpense(expenseID int64) ([]*models.Attachment, error) {
	var attachments []*models.Attachment
	for _, a := range f.attachments {
		if a.ExpenseID == expenseID {
			attachments = append(attachments, a)
		}
	}
	sort.Slice(attachments, func(i, j int) bool { return attachments[i].ID < attachments[j].ID })
	return attachments, nil
}

func (f *fakeDB) ListAttachmentsByProject(projectID int64) ([]*models.Attachment, error) {
	var attachments []*models.Attachment
	for _, a := range f.attachments {
		e := f.expenses[a.ExpenseID]
		if e != nil && e.ProjectID == projectID {
			attachments = append(attachments, a)
		}
	}
	sort.Slice(attachments, func(i, j int) bool { return attachments[i].ID < attachments[j].ID })
	return attachments, nil
}

func (f *fakeDB) DeleteAttachment(id int64) error {
	delete(f.attachments, id)
	return nil
}

// fakeStore keeps files in memory and records removals.
type fakeStore struct {
	files      map[string][]byte
	removed    []string
	failRemove bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: make(map[string][]byte)}
}

func (s *fakeStore) Save(filename, contentType string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	url := "/uploads/" + filepath.Base(filename)
	s.files[url] = buf.Bytes()
	return url, nil
}

func (s *fakeStore) Remove(fileURL string) error {
	s.removed = append(s.removed, fileURL)
	if s.failRemove {
		return errors.New("remove failed")
	}
	delete(s.files, fileURL)
	return nil
}
