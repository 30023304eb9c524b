package domain

// ShareMethod is how a share request was fulfilled.
type ShareMethod string

const (
	ShareMethodNative    ShareMethod = "native"
	ShareMethodClipboard ShareMethod = "clipboard"
)

// ShareRequest is what gets handed to the platform.
type ShareRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ShareResult is returned to the caller. Notice is set on clipboard copies.
type ShareResult struct {
	Method ShareMethod  `json:"method"`
	Intent ShareRequest `json:"intent"`
	Notice string       `json:"notice,omitempty"`
	OK     bool         `json:"ok"`
}

const LinkCopiedNotice = "Link copied!"
