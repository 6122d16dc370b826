package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/l1jgo/scene/internal/camera"
	"github.com/l1jgo/scene/internal/component"
	"github.com/l1jgo/scene/internal/core/ecs"
	"github.com/l1jgo/scene/internal/material"
)

var (
	ErrUnknownPrimitive    = errors.New("unknown mesh primitive")
	ErrUnknownMaterialName = errors.New("unknown material name")
	ErrUnknownMaterialType = errors.New("unknown material type")
)

// File is the YAML scene description.
type File struct {
	Camera    CameraDef     `yaml:"camera"`
	Materials []MaterialDef `yaml:"materials"`
	Entities  []EntityDef   `yaml:"entities"`
}

type CameraDef struct {
	Position   [3]float32 `yaml:"position"`
	Front      [3]float32 `yaml:"front"`
	Up         [3]float32 `yaml:"up"`
	FovDegrees float32    `yaml:"fov_degrees"` // 0 = camera default
}

type MaterialDef struct {
	Name  string     `yaml:"name"`
	Type  string     `yaml:"type"` // only "simple" is buildable
	Color [3]float32 `yaml:"color"`
}

type EntityDef struct {
	Name      string        `yaml:"name"`
	Mesh      *MeshDef      `yaml:"mesh"`
	Material  string        `yaml:"material"`
	Transform *TransformDef `yaml:"transform"`
	Spin      *SpinDef      `yaml:"spin"`
}

type MeshDef struct {
	Primitive string `yaml:"primitive"` // cube, plane_xz, plane_xy, plane_yz
	Cols      uint32 `yaml:"cols"`
	Rows      uint32 `yaml:"rows"`
}

type TransformDef struct {
	Translation [3]float32  `yaml:"translation"`
	Scale       *[3]float32 `yaml:"scale"`
	Axis        [3]float32  `yaml:"axis"`
	Angle       float32     `yaml:"angle"` // radians
}

type SpinDef struct {
	Axis  [3]float32 `yaml:"axis"`
	Speed float32    `yaml:"speed"`
}

// Report counts what Populate created.
type Report struct {
	Entities  int
	Materials int
	Meshes    int
}

// Load reads a scene description from a YAML file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a scene description.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &f, nil
}

// NewCamera builds the camera described by the file. A zero front or up
// falls back to looking down -Z with +Y up.
func (f *File) NewCamera() *camera.Camera {
	front := mgl32.Vec3(f.Camera.Front)
	if front.Len() == 0 {
		front = mgl32.Vec3{0, 0, -1}
	}
	up := mgl32.Vec3(f.Camera.Up)
	if up.Len() == 0 {
		up = mgl32.Vec3{0, 1, 0}
	}
	cam := camera.New(mgl32.Vec3(f.Camera.Position), front, up)
	if f.Camera.FovDegrees > 0 {
		cam.FovY = mgl32.DegToRad(f.Camera.FovDegrees)
	}
	return cam
}

// Populate registers the file's materials with mats and spawns one entity
// per entry into store. Identical primitive definitions share one Mesh.
// On error the store may hold the entities created so far.
func (f *File) Populate(store *ecs.Store, mats *material.Manager) (Report, error) {
	var rep Report
	byName := make(map[string]material.ID, len(f.Materials))
	for _, md := range f.Materials {
		m, err := buildMaterial(md)
		if err != nil {
			return rep, fmt.Errorf("material %q: %w", md.Name, err)
		}
		byName[md.Name] = mats.New(m)
		rep.Materials++
	}

	meshes := make(map[MeshDef]*component.Mesh)
	for i, ed := range f.Entities {
		label := ed.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		e := store.Spawn()
		rep.Entities++
		if ed.Name != "" {
			if err := ecs.AddComponent(store, e, component.Name(ed.Name)); err != nil {
				return rep, err
			}
		}
		if ed.Mesh != nil {
			mesh, ok := meshes[*ed.Mesh]
			if !ok {
				var err error
				if mesh, err = buildMesh(*ed.Mesh); err != nil {
					return rep, fmt.Errorf("entity %s: %w", label, err)
				}
				meshes[*ed.Mesh] = mesh
			}
			id, ok := byName[ed.Material]
			if !ok {
				return rep, fmt.Errorf("entity %s: %q: %w", label, ed.Material, ErrUnknownMaterialName)
			}
			mc := component.MeshComponent{
				Mesh:     mesh,
				Model:    buildTransform(ed.Transform),
				Material: id,
			}
			if err := ecs.AddComponent(store, e, mc); err != nil {
				return rep, err
			}
			rep.Meshes++
		}
		if ed.Spin != nil {
			spin := component.Spin{Axis: mgl32.Vec3(ed.Spin.Axis), Speed: ed.Spin.Speed}
			if err := ecs.AddComponent(store, e, spin); err != nil {
				return rep, err
			}
		}
	}
	return rep, nil
}

func buildMaterial(md MaterialDef) (material.Material, error) {
	switch md.Type {
	case "", "simple":
		return material.NewSimple(md.Color[0], md.Color[1], md.Color[2]), nil
	}
	return nil, fmt.Errorf("%q: %w", md.Type, ErrUnknownMaterialType)
}

func buildMesh(md MeshDef) (*component.Mesh, error) {
	switch md.Primitive {
	case "cube":
		return component.SharpCube(), nil
	case "plane_xz":
		return component.PlaneXZ(md.Cols, md.Rows), nil
	case "plane_xy":
		return component.PlaneXY(md.Cols, md.Rows), nil
	case "plane_yz":
		return component.PlaneYZ(md.Cols, md.Rows), nil
	}
	return nil, fmt.Errorf("%q: %w", md.Primitive, ErrUnknownPrimitive)
}

func buildTransform(td *TransformDef) component.Transform {
	t := component.NewTransform()
	if td == nil {
		return t
	}
	t.Translate(mgl32.Vec3(td.Translation))
	if td.Scale != nil {
		t.ScaleBy(mgl32.Vec3(*td.Scale))
	}
	if td.Angle != 0 {
		t.Rotate(mgl32.Vec3(td.Axis), td.Angle)
	}
	return t
}
