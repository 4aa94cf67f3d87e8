// server/internal/pickup/draft.go
package pickup

// MaxImages is the attachment cap enforced at the API boundary. The draft
// itself does not enforce it, mirroring the form layer where the upload
// control is hidden once three images are attached but nothing stops a
// direct append.
const MaxImages = 3

// Draft holds the user-entered pickup fields before submission. Weight stays
// a raw string until the gateway parses it; every field change is a wholesale
// replacement, last write wins.
type Draft struct {
	WasteType       string
	EstimatedWeight string
	Address         string
	ScheduledDate   string // ISO date, e.g., "2025-01-01"
	ScheduledTime   string // optional band: morning, afternoon, evening, any
	Notes           string
	Images          []string
}

// AttachImage appends a hosted image URL unconditionally. No deduplication
// and no URL validation, by contract of the attachment manager.
func (d *Draft) AttachImage(url string) {
	d.Images = append(d.Images, url)
}

// RemoveImage drops exactly the element at index i; later entries shift down
// by one. It does not touch the hosted asset.
// TODO: removed attachments leave an orphaned object behind; call the upload
// deletion endpoint (DELETE /api/v1/uploads) with the asset's publicId.
func (d *Draft) RemoveImage(i int) {
	if i < 0 || i >= len(d.Images) {
		return
	}
	d.Images = append(d.Images[:i], d.Images[i+1:]...)
}
