package entity

import "time"

// TopicStatus estado de la revisión del tema de un post.
type TopicStatus string

// OutlineStatus estado de la revisión del esquema. Solo tiene sentido una vez
// aprobado el tema; hasta entonces el post no tiene outline status (nil).
type OutlineStatus string

// Estados del track de tema.
const (
	TopicPending  TopicStatus = "pending"
	TopicApproved TopicStatus = "approved"
	TopicRejected TopicStatus = "rejected"
)

// Estados del track de esquema.
const (
	OutlinePending  OutlineStatus = "pending"
	OutlineApproved OutlineStatus = "approved"
	OutlineRejected OutlineStatus = "rejected"
)

// Post un artículo/tema dentro de una campaña, con su pipeline de aprobación.
type Post struct {
	ID            ID
	CampaignID    ID
	Title         string
	Outline       *string
	TopicStatus   TopicStatus
	OutlineStatus *OutlineStatus
	RejectReason  *string
	PublishedURL  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
