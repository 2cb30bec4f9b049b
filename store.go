package ggmesh

import (
	"slices"

	"github.com/google/uuid"
)

// EntityID identifies a drawable owned by a Store.
type EntityID = uuid.UUID

// Entity is a drawable registered in a Store.
type Entity struct {
	ID       EntityID
	Name     string
	Drawable Drawable
}

// Store owns the images and meshes that make up a scene.
//
// Entities keep their insertion order. Removing an entity releases its
// backing resource; Close releases everything. A Store belongs to the
// frame loop and is not safe for concurrent use.
type Store struct {
	order    []EntityID
	entities map[EntityID]Entity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entities: make(map[EntityID]Entity)}
}

// Add registers a drawable under a name and returns its new ID.
func (s *Store) Add(name string, d Drawable) EntityID {
	id := uuid.New()
	s.entities[id] = Entity{ID: id, Name: name, Drawable: d}
	s.order = append(s.order, id)
	return id
}

// AddImage registers an image.
func (s *Store) AddImage(name string, img *Image) EntityID { return s.Add(name, img) }

// AddMesh registers a mesh.
func (s *Store) AddMesh(name string, m *Mesh) EntityID { return s.Add(name, m) }

// Get returns the entity with the given ID.
func (s *Store) Get(id EntityID) (Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Image returns the image registered under id, or nil if id is unknown
// or names a mesh.
func (s *Store) Image(id EntityID) *Image {
	img, _ := s.entities[id].Drawable.(*Image)
	return img
}

// Mesh returns the mesh registered under id, or nil if id is unknown
// or names an image.
func (s *Store) Mesh(id EntityID) *Mesh {
	m, _ := s.entities[id].Drawable.(*Mesh)
	return m
}

// Lookup returns the first entity with the given name.
func (s *Store) Lookup(name string) (Entity, bool) {
	for _, id := range s.order {
		if e := s.entities[id]; e.Name == name {
			return e, true
		}
	}
	return Entity{}, false
}

// Entities returns all entities in insertion order.
func (s *Store) Entities() []Entity {
	out := make([]Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entities[id])
	}
	return out
}

// Len returns the number of entities.
func (s *Store) Len() int { return len(s.order) }

// Remove releases and forgets an entity. It reports whether id was present.
func (s *Store) Remove(id EntityID) bool {
	e, ok := s.entities[id]
	if !ok {
		return false
	}
	release(e.Drawable)
	delete(s.entities, id)
	s.order = slices.DeleteFunc(s.order, func(x EntityID) bool { return x == id })
	return true
}

// Close releases every entity and empties the store.
func (s *Store) Close() {
	n := len(s.order)
	for _, id := range s.order {
		release(s.entities[id].Drawable)
	}
	s.order = nil
	clear(s.entities)
	Logger().Info("ggmesh: store closed", "released", n)
}

func release(d Drawable) {
	switch v := d.(type) {
	case *Image:
		v.Release()
	case *Mesh:
		v.Release()
	}
}
