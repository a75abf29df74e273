package confluence

import "context"

// ConfluenceClient defines the interface for Confluence operations
type ConfluenceClient interface {
	CreatePage(spaceKey, title, content string) (*Page, error)
	CreatePageWithParent(spaceKey, title, content, parentID string) (*Page, error)
	UpdatePage(pageID, title, content string) (*Page, error)
	UpdateOrCreatePage(spaceKey, title, content, parentID string) (*Page, error)
	FindPageByTitle(spaceKey, title string) (*Page, error)
	GetPage(pageID string) (*Page, error)
	RemovePage(pageID string, recursive bool) error
	GetPageHierarchy(spaceKey, parentPageTitle string) ([]PageInfo, error)
	GetPageAncestors(pageID string) ([]PageInfo, error)
	GetChildPages(pageID string) ([]PageInfo, error)
	GetPageLabels(pageID string) ([]Label, error)
	AddPageLabel(pageID, label string) error
	RemovePageLabel(pageID, label string) error
	GetSpace(spaceKey string) (*Space, error)
	GetAllSpaces(start, limit int) ([]Space, error)
	ListAttachments(pageID string, opts AttachmentListOptions) ([]Attachment, error)
	UploadAttachment(pageID, filePath string) (*Attachment, error)
	AttachmentDownloadURL(pageID, attachmentID string) (string, error)
	SearchCQL(cql string, opts SearchOptions) (*SearchResults, error)
	GetLongTasks(start, limit int) ([]LongTask, error)
	GetLongTask(taskID string) (*LongTask, error)
	ExportPageAsPDF(ctx context.Context, pageID string) ([]byte, error)
	ExportPageAsWord(ctx context.Context, pageID string) ([]byte, error)
}

// Ensure Client implements the interface
var _ ConfluenceClient = (*Client)(nil)
