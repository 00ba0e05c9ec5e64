package models

// Target names the kind of entity comments and likes attach to. The same
// operations run against different collections depending on the target.
type Target string

const (
	TargetPost  Target = "post"
	TargetVideo Target = "video"
)

func ParseTarget(s string) (Target, bool) {
	switch Target(s) {
	case TargetPost, TargetVideo:
		return Target(s), true
	}
	return "", false
}

// Field is the reference field name inside comment and like documents.
func (t Target) Field() string { return string(t) }

// Collection holds the target entities themselves.
func (t Target) Collection() string { return string(t) + "s" }

func (t Target) CommentCollection() string { return string(t) + "comments" }

func (t Target) LikeCollection() string { return string(t) + "likes" }
