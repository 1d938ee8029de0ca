package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGPU records uploads and binds so registry bookkeeping can be
// verified without a GL context.
type fakeGPU struct {
	nextID  uint32
	uploads int
	binds   [][2]uint32 // (slot, id) in bind order
	deleted []uint32
}

func (f *fakeGPU) Upload(pixels []byte, width, height, channels int) (uint32, error) {
	f.uploads++
	f.nextID++
	return f.nextID, nil
}

func (f *fakeGPU) Bind(slot int, id uint32) {
	f.binds = append(f.binds, [2]uint32{uint32(slot), id})
}

func (f *fakeGPU) Delete(ids []uint32) {
	f.deleted = append(f.deleted, ids...)
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func writeJPEG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	require.NoError(t, jpeg.Encode(f, img, nil))
	return path
}

func rgbaFixture() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: byte(x * 255), G: byte(y * 255), B: 128, A: 255})
		}
	}
	return img
}

func TestRegisterAssignsSlotsInOrder(t *testing.T) {
	dir := t.TempDir()
	pngPath := writePNG(t, dir, "a.png", rgbaFixture())
	jpegPath := writeJPEG(t, dir, "b.jpg")

	gpu := &fakeGPU{}
	r := NewRegistry(gpu)

	require.NoError(t, r.Register(pngPath, "A"))
	require.NoError(t, r.Register(jpegPath, "B"))

	assert.Equal(t, 0, r.FindSlot("A"))
	assert.Equal(t, 1, r.FindSlot("B"))
	assert.Equal(t, 2, r.LoadedCount())

	idA, ok := r.FindID("A")
	assert.True(t, ok)
	assert.NotZero(t, idA)
	_, ok = r.FindID("missing")
	assert.False(t, ok)
}

func TestFindSlotMissingReturnsSentinel(t *testing.T) {
	r := NewRegistry(&fakeGPU{})
	assert.Equal(t, -1, r.FindSlot("nope"))
}

func TestRegisterRejectsGrayscale(t *testing.T) {
	dir := t.TempDir()
	grayPath := writePNG(t, dir, "gray.png", image.NewGray(image.Rect(0, 0, 2, 2)))
	pngPath := writePNG(t, dir, "ok.png", rgbaFixture())

	gpu := &fakeGPU{}
	r := NewRegistry(gpu)

	err := r.Register(grayPath, "Gray")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "channels")
	assert.Equal(t, 0, r.LoadedCount())
	assert.Equal(t, 0, gpu.uploads)

	// The failed registration must not have consumed slot 0.
	require.NoError(t, r.Register(pngPath, "OK"))
	assert.Equal(t, 0, r.FindSlot("OK"))
}

func TestRegisterMissingFile(t *testing.T) {
	r := NewRegistry(&fakeGPU{})
	err := r.Register(filepath.Join(t.TempDir(), "absent.png"), "X")
	assert.Error(t, err)
	assert.Equal(t, 0, r.LoadedCount())
}

func TestRegisterRejectsWhenFull(t *testing.T) {
	dir := t.TempDir()
	pngPath := writePNG(t, dir, "a.png", rgbaFixture())

	r := NewRegistry(&fakeGPU{})
	for i := 0; i < MaxSlots; i++ {
		require.NoError(t, r.Register(pngPath, fmt.Sprintf("tex%d", i)))
	}
	err := r.Register(pngPath, "overflow")
	assert.Error(t, err)
	assert.Equal(t, MaxSlots, r.LoadedCount())
	assert.Equal(t, -1, r.FindSlot("overflow"))
}

func TestBindAllBindsInRegistrationOrder(t *testing.T) {
	dir := t.TempDir()
	pngPath := writePNG(t, dir, "a.png", rgbaFixture())
	jpegPath := writeJPEG(t, dir, "b.jpg")

	gpu := &fakeGPU{}
	r := NewRegistry(gpu)
	require.NoError(t, r.Register(pngPath, "A"))
	require.NoError(t, r.Register(jpegPath, "B"))

	r.BindAll()

	idA, _ := r.FindID("A")
	idB, _ := r.FindID("B")
	require.Len(t, gpu.binds, 2)
	assert.Equal(t, [2]uint32{0, idA}, gpu.binds[0])
	assert.Equal(t, [2]uint32{1, idB}, gpu.binds[1])
}

func TestDestroyReleasesTextures(t *testing.T) {
	dir := t.TempDir()
	pngPath := writePNG(t, dir, "a.png", rgbaFixture())

	gpu := &fakeGPU{}
	r := NewRegistry(gpu)
	require.NoError(t, r.Register(pngPath, "A"))
	id, _ := r.FindID("A")

	r.Destroy()
	assert.Equal(t, []uint32{id}, gpu.deleted)
	assert.Equal(t, 0, r.LoadedCount())
	assert.Equal(t, -1, r.FindSlot("A"))
}

func TestDecodeChannelsAndFlip(t *testing.T) {
	dir := t.TempDir()

	// 1x2 image: top pixel red, bottom pixel blue. After the mandated
	// vertical flip the packed buffer starts with the bottom pixel.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	path := writePNG(t, dir, "flip.png", img)

	pixels, w, h, channels, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, 1, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, 4, channels)
	require.Len(t, pixels, 8)
	assert.Equal(t, byte(255), pixels[2], "first packed pixel should be the blue bottom row")
	assert.Equal(t, byte(255), pixels[4], "second packed pixel should be the red top row")

	jpegPath := writeJPEG(t, dir, "c.jpg")
	_, _, _, channels, err = Decode(jpegPath)
	require.NoError(t, err)
	assert.Equal(t, 3, channels)
}
