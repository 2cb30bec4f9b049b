package ggmesh

import "fmt"

// ShowcaseAssets names the images the showcase scene loads.
type ShowcaseAssets struct {
	Image   string // drawn untransformed
	Sprite  string // drawn scaled and rotating, once per filter mode
	Texture string // textures the raw triangle
}

// DefaultShowcaseAssets are the resource paths used by the demo.
var DefaultShowcaseAssets = ShowcaseAssets{
	Image:   "/dragon1.png",
	Sprite:  "/shot.png",
	Texture: "/rock.png",
}

// ShowcaseBackground is the clear color of the showcase scene.
var ShowcaseBackground = Color{R: 0.1, G: 0.2, B: 0.3, A: 1}

// ShowcaseScene exercises every drawable kind: a plain image, one sprite
// under linear and nearest filtering rotating on a fixed timestep, two
// rectangles rebuilt every frame, a mesh of mixed primitives and a
// textured triangle.
type ShowcaseScene struct {
	store    *Store
	image    EntityID
	linear   EntityID
	nearest  EntityID
	meshes   []EntityID
	animator *Animator
	state    AnimationState
}

// NewShowcaseScene loads the assets through h and builds the static meshes.
func NewShowcaseScene(h Host, assets ShowcaseAssets) (*ShowcaseScene, error) {
	s := &ShowcaseScene{
		store:    NewStore(),
		animator: NewAnimator(),
		state:    AnimationState{Rotation: 1},
	}
	if err := s.load(h, assets); err != nil {
		s.store.Close()
		return nil, err
	}
	return s, nil
}

func (s *ShowcaseScene) load(h Host, a ShowcaseAssets) error {
	image, err := h.LoadImage(a.Image)
	if err != nil {
		return err
	}
	s.image = s.store.AddImage("image", image)

	linear, err := h.LoadImage(a.Sprite)
	if err != nil {
		return err
	}
	s.linear = s.store.AddImage("sprite-linear", linear)

	nearest, err := h.LoadImage(a.Sprite)
	if err != nil {
		return err
	}
	h.SetFilter(nearest, FilterNearest)
	s.nearest = s.store.AddImage("sprite-nearest", nearest)

	shapes, err := buildShowcaseMesh()
	if err != nil {
		return err
	}
	s.meshes = append(s.meshes, s.store.AddMesh("shapes", shapes))

	texture, err := h.LoadImage(a.Texture)
	if err != nil {
		return err
	}
	s.store.AddImage("texture", texture)
	triangle, err := buildTexturedTriangle(texture)
	if err != nil {
		return err
	}
	s.meshes = append(s.meshes, s.store.AddMesh("textured-triangle", triangle))
	return nil
}

func buildShowcaseMesh() (*Mesh, error) {
	mb := NewMeshBuilder()
	_ = mb.Line([]Point{
		{X: 200, Y: 200},
		{X: 400, Y: 200},
		{X: 400, Y: 400},
		{X: 200, Y: 400},
		{X: 200, Y: 300},
	}, 4, Red)
	_ = mb.Ellipse(Fill(), Pt(600, 200), 50, 120, 1, NewColor(1, 1, 0, 1))
	_ = mb.Circle(Fill(), Pt(600, 380), 40, 1, NewColor(1, 0, 1, 1))
	return mb.Build()
}

func buildTexturedTriangle(texture *Image) (*Mesh, error) {
	mb := NewMeshBuilder()
	verts := []Vertex{
		NewVertex(Pt(100, 100), Pt(1, 1), NewColor(1, 0, 0, 1)),
		NewVertex(Pt(0, 100), Pt(0, 1), NewColor(0, 1, 0, 1)),
		NewVertex(Pt(0, 0), Pt(0, 0), NewColor(0, 0, 1, 1)),
	}
	_ = mb.Raw(verts, []uint32{0, 1, 2}, texture)
	return mb.Build()
}

// Store returns the entity store owning the scene's resources.
func (s *ShowcaseScene) Store() *Store { return s.store }

// State returns the current animation state.
func (s *ShowcaseScene) State() AnimationState { return s.state }

// Update implements Handler.
func (s *ShowcaseScene) Update(h Host) error {
	if n := s.animator.Update(&s.state, h); n > 0 {
		Logger().Debug("ggmesh: showcase ticks", "ticks", n, "rotation", s.state.Rotation)
	}
	return nil
}

// Draw implements Handler.
func (s *ShowcaseScene) Draw(h Host) error {
	fill, err := ShapeMesh(Rectangle{Rect: NewRect(450, 450, 50, 50), Color: White}, GenerativeTolerance)
	if err != nil {
		return err
	}
	defer fill.Release()

	mb := NewMeshBuilder()
	_ = mb.Rectangle(Stroke(1), NewRect(450, 450, 50, 50), Red)
	outline, err := mb.Build()
	if err != nil {
		return err
	}
	defer outline.Release()

	spin := DefaultDrawParam().WithRotation(s.state.Rotation).WithScale(10, 10)
	bg := ShowcaseBackground
	f := Frame{Clear: &bg}
	f.Add(s.store.Image(s.image), DefaultDrawParam().WithDest(Pt(20, 20))).
		Add(s.store.Image(s.linear), spin.WithDest(Pt(200, 100))).
		Add(s.store.Image(s.nearest), spin.WithDest(Pt(400, 400))).
		Add(fill, DefaultDrawParam()).
		Add(outline, DefaultDrawParam())
	for _, id := range s.meshes {
		f.Add(s.store.Mesh(id), DefaultDrawParam())
	}
	if err := Render(h, f); err != nil {
		return fmt.Errorf("showcase: %w", err)
	}
	return nil
}

// Close releases every resource owned by the scene.
func (s *ShowcaseScene) Close() {
	s.store.Close()
}
