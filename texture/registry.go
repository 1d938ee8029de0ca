// Package texture loads image files into GPU textures and maps symbolic
// tags to texture-unit slots assigned in registration order.
package texture

import (
	"fmt"
	"log"
	"os"
)

// MaxSlots is the number of texture units the registry will fill. It
// matches the guaranteed minimum of GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS
// on the targeted hardware.
const MaxSlots = 16

// GPU abstracts the GL calls the registry needs, so registration and
// slot bookkeeping can be exercised without a live context.
type GPU interface {
	// Upload creates a 2D texture from tightly packed pixel data with
	// channels of 3 (RGB) or 4 (RGBA) and returns its handle.
	Upload(pixels []byte, width, height, channels int) (uint32, error)
	// Bind binds the texture id to the numbered texture unit.
	Bind(slot int, id uint32)
	// Delete releases the given texture handles.
	Delete(ids []uint32)
}

type entry struct {
	tag string
	id  uint32
}

// Registry owns the loaded scene textures. Slots are contiguous from 0
// in registration order; lookups are map-backed with first-registration-
// wins semantics for duplicate tags.
type Registry struct {
	gpu     GPU
	entries []entry
	slots   map[string]int
}

func NewRegistry(gpu GPU) *Registry {
	return &Registry{
		gpu:   gpu,
		slots: make(map[string]int),
	}
}

// Register decodes the image at path, uploads it to the GPU, and
// assigns tag the next free slot. Failures (unreadable file, channel
// count outside {3,4}, registry full) leave the registry unchanged so a
// later registration gets the slot the failed one would have taken.
func (r *Registry) Register(path, tag string) error {
	if wd, err := os.Getwd(); err == nil {
		log.Printf("Runtime working directory: %s", wd)
	}
	log.Printf("Attempting to load image: %s", path)

	if len(r.entries) >= MaxSlots {
		return fmt.Errorf("cannot register texture %q: all %d texture slots are in use", tag, MaxSlots)
	}

	pixels, width, height, channels, err := Decode(path)
	if err != nil {
		return err
	}
	if channels != 3 && channels != 4 {
		return fmt.Errorf("image %s has %d channels; only 3 (RGB) or 4 (RGBA) are supported", path, channels)
	}

	id, err := r.gpu.Upload(pixels, width, height, channels)
	if err != nil {
		return fmt.Errorf("could not upload texture %s: %w", path, err)
	}

	log.Printf("Successfully loaded image: %s, width: %d, height: %d, channels: %d", path, width, height, channels)

	r.entries = append(r.entries, entry{tag: tag, id: id})
	if _, shadowed := r.slots[tag]; !shadowed {
		r.slots[tag] = len(r.entries) - 1
	}
	return nil
}

// FindSlot returns the texture-unit slot registered for tag, or -1.
// Not-found is not an error; a -1 sampler binding degrades to a visual
// artifact rather than a crash.
func (r *Registry) FindSlot(tag string) int {
	slot, ok := r.slots[tag]
	if !ok {
		return -1
	}
	return slot
}

// FindID returns the GPU handle registered for tag.
func (r *Registry) FindID(tag string) (uint32, bool) {
	slot, ok := r.slots[tag]
	if !ok {
		return 0, false
	}
	return r.entries[slot].id, true
}

// LoadedCount reports how many textures have been registered.
func (r *Registry) LoadedCount() int {
	return len(r.entries)
}

// BindAll binds every registered texture to its slot's texture unit in
// registration order. Call once after all registrations, before the
// first draw that samples a texture.
func (r *Registry) BindAll() {
	for slot, e := range r.entries {
		r.gpu.Bind(slot, e.id)
	}
}

// Destroy releases all GPU textures and empties the registry. The
// registry is unusable afterwards except for re-registration.
func (r *Registry) Destroy() {
	if len(r.entries) == 0 {
		return
	}
	ids := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.id
	}
	r.gpu.Delete(ids)
	r.entries = nil
	r.slots = make(map[string]int)
}
