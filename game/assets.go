package game

import (
	"embed"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pkg/errors"
)

//go:embed assets
var embedded embed.FS

const (
	aliveSpritePath      = "sprites/alive.png"
	deadSpritePath       = "sprites/dead.png"
	backgroundShaderPath = "shaders/background.kage"
)

// Assets are the images and shaders the renderer draws with.
type Assets struct {
	Alive      *ebiten.Image
	Dead       *ebiten.Image
	Background *ebiten.Shader
}

// EmbeddedAssets returns the asset tree compiled into the binary.
func EmbeddedAssets() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadAssets decodes the sprites and compiles the background shader
// found in fsys.
func LoadAssets(fsys fs.FS) (*Assets, error) {
	alive, _, err := ebitenutil.NewImageFromFileSystem(fsys, aliveSpritePath)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", aliveSpritePath)
	}

	dead, _, err := ebitenutil.NewImageFromFileSystem(fsys, deadSpritePath)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", deadSpritePath)
	}

	src, err := fs.ReadFile(fsys, backgroundShaderPath)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", backgroundShaderPath)
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %s", backgroundShaderPath)
	}

	return &Assets{Alive: alive, Dead: dead, Background: shader}, nil
}
