package confluence

import (
	"context"
	"fmt"
	"path/filepath"
)

// MockClient is an in-memory implementation of ConfluenceClient for tests.
type MockClient struct {
	Pages            map[string]*Page        // pageID -> Page
	PagesByTitle     map[string]*Page        // spaceKey:title -> Page
	Children         map[string][]PageInfo   // pageID -> children
	Ancestors        map[string][]PageInfo   // pageID -> ancestors chain
	SpaceHierarchies map[string][]PageInfo   // spaceKey -> root pages (fully nested)
	Spaces           map[string]*Space       // spaceKey -> space
	Labels           map[string][]Label      // pageID -> labels
	Attachments      map[string][]Attachment // pageID -> attachments
	LongTasks        map[string]*LongTask    // taskID -> task
	SearchHits       []SearchHit             // returned by SearchCQL
	PDFBytes         []byte                  // returned by ExportPageAsPDF
	WordBytes        []byte                  // returned by ExportPageAsWord

	CreateCalls      []string // titles created (for assertions)
	UpdateCalls      []string // titles updated
	RemovedPages     []string
	LastUploadedFile string
	LastCQL          string
	FailFindByTitle  bool
	ExportErr        error
}

func NewMockClient() *MockClient {
	return &MockClient{
		Pages:            make(map[string]*Page),
		PagesByTitle:     make(map[string]*Page),
		Children:         make(map[string][]PageInfo),
		Ancestors:        make(map[string][]PageInfo),
		SpaceHierarchies: make(map[string][]PageInfo),
		Spaces:           make(map[string]*Space),
		Labels:           make(map[string][]Label),
		Attachments:      make(map[string][]Attachment),
		LongTasks:        make(map[string]*LongTask),
	}
}

func (m *MockClient) key(spaceKey, title string) string { return spaceKey + ":" + title }

func (m *MockClient) CreatePage(spaceKey, title, content string) (*Page, error) {
	p := &Page{ID: title + "-id", Title: title}
	p.Body.Storage.Value = content
	p.Space.Key = spaceKey
	m.Pages[p.ID] = p
	m.PagesByTitle[m.key(spaceKey, title)] = p
	m.CreateCalls = append(m.CreateCalls, title)
	return p, nil
}

func (m *MockClient) CreatePageWithParent(spaceKey, title, content, parentID string) (*Page, error) {
	return m.CreatePage(spaceKey, title, content)
}

func (m *MockClient) UpdatePage(pageID, title, content string) (*Page, error) {
	if p, ok := m.Pages[pageID]; ok {
		p.Title = title
		p.Body.Storage.Value = content
		m.UpdateCalls = append(m.UpdateCalls, title)
		return p, nil
	}
	return nil, nil
}

func (m *MockClient) UpdateOrCreatePage(spaceKey, title, content, parentID string) (*Page, error) {
	if existing := m.PagesByTitle[m.key(spaceKey, title)]; existing != nil {
		return m.UpdatePage(existing.ID, title, content)
	}
	return m.CreatePageWithParent(spaceKey, title, content, parentID)
}

func (m *MockClient) FindPageByTitle(spaceKey, title string) (*Page, error) {
	if m.FailFindByTitle {
		return nil, nil
	}
	return m.PagesByTitle[m.key(spaceKey, title)], nil
}

func (m *MockClient) GetPage(pageID string) (*Page, error) {
	return m.Pages[pageID], nil
}

func (m *MockClient) RemovePage(pageID string, recursive bool) error {
	if recursive {
		for _, child := range m.Children[pageID] {
			if err := m.RemovePage(child.ID, true); err != nil {
				return err
			}
		}
	}
	delete(m.Pages, pageID)
	m.RemovedPages = append(m.RemovedPages, pageID)
	return nil
}

func (m *MockClient) GetPageHierarchy(spaceKey, parentPageTitle string) ([]PageInfo, error) {
	if parentPageTitle != "" {
		// find parent in hierarchy and return its children if available
		roots := m.SpaceHierarchies[spaceKey]
		var stack []PageInfo
		stack = append(stack, roots...)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if cur.Title == parentPageTitle {
				return cur.Children, nil
			}
			stack = append(stack, cur.Children...)
		}
		return []PageInfo{}, nil
	}
	return m.SpaceHierarchies[spaceKey], nil
}

func (m *MockClient) GetPageAncestors(pageID string) ([]PageInfo, error) {
	return m.Ancestors[pageID], nil
}

func (m *MockClient) GetChildPages(pageID string) ([]PageInfo, error) {
	return m.Children[pageID], nil
}

func (m *MockClient) GetPageLabels(pageID string) ([]Label, error) {
	return m.Labels[pageID], nil
}

func (m *MockClient) AddPageLabel(pageID, label string) error {
	m.Labels[pageID] = append(m.Labels[pageID], Label{Prefix: "global", Name: label})
	return nil
}

func (m *MockClient) RemovePageLabel(pageID, label string) error {
	labels := m.Labels[pageID]
	for i, l := range labels {
		if l.Name == label {
			m.Labels[pageID] = append(labels[:i], labels[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("label '%s' not found on page %s", label, pageID)
}

func (m *MockClient) GetSpace(spaceKey string) (*Space, error) {
	if s, ok := m.Spaces[spaceKey]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("space '%s' not found", spaceKey)
}

func (m *MockClient) GetAllSpaces(start, limit int) ([]Space, error) {
	var spaces []Space
	for _, s := range m.Spaces {
		spaces = append(spaces, *s)
	}
	return spaces, nil
}

func (m *MockClient) ListAttachments(pageID string, opts AttachmentListOptions) ([]Attachment, error) {
	attachments := m.Attachments[pageID]
	if opts.Filename == "" {
		return attachments, nil
	}
	var filtered []Attachment
	for _, att := range attachments {
		if att.Title == opts.Filename {
			filtered = append(filtered, att)
		}
	}
	return filtered, nil
}

func (m *MockClient) UploadAttachment(pageID, filePath string) (*Attachment, error) {
	att := Attachment{ID: "att-" + filepath.Base(filePath), Title: filepath.Base(filePath)}
	m.Attachments[pageID] = append(m.Attachments[pageID], att)
	m.LastUploadedFile = filePath
	return &att, nil
}

func (m *MockClient) AttachmentDownloadURL(pageID, attachmentID string) (string, error) {
	// Return a dummy local path for testing
	return "attachments/" + attachmentID, nil
}

func (m *MockClient) SearchCQL(cql string, opts SearchOptions) (*SearchResults, error) {
	m.LastCQL = cql
	return &SearchResults{
		Results:   m.SearchHits,
		Size:      len(m.SearchHits),
		TotalSize: len(m.SearchHits),
	}, nil
}

func (m *MockClient) GetLongTasks(start, limit int) ([]LongTask, error) {
	var tasks []LongTask
	for _, t := range m.LongTasks {
		tasks = append(tasks, *t)
	}
	return tasks, nil
}

func (m *MockClient) GetLongTask(taskID string) (*LongTask, error) {
	if t, ok := m.LongTasks[taskID]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("long task '%s' not found", taskID)
}

func (m *MockClient) ExportPageAsPDF(ctx context.Context, pageID string) ([]byte, error) {
	if m.ExportErr != nil {
		return nil, m.ExportErr
	}
	return m.PDFBytes, nil
}

func (m *MockClient) ExportPageAsWord(ctx context.Context, pageID string) ([]byte, error) {
	if m.ExportErr != nil {
		return nil, m.ExportErr
	}
	return m.WordBytes, nil
}

var _ ConfluenceClient = (*MockClient)(nil)
