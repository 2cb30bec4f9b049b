package ggmesh

// Drawable is something the host can draw: an *Image or a *Mesh.
// The set is closed; renderers dispatch on it with a type switch.
type Drawable interface {
	isDrawable()
	Released() bool
}

var (
	_ Drawable = (*Image)(nil)
	_ Drawable = (*Mesh)(nil)
)

// checkDrawable validates that d still has a backing resource.
func checkDrawable(d Drawable) error {
	switch v := d.(type) {
	case *Image:
		if v == nil {
			return ErrNilDrawable
		}
	case *Mesh:
		if v == nil {
			return ErrNilDrawable
		}
	default:
		return ErrNilDrawable
	}
	if d.Released() {
		return ErrResourceReleased
	}
	return nil
}
