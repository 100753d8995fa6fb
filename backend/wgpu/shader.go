package wgpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"
)

//go:embed shaders/particles.wgsl
var particlesWGSL string

// Entry points exported by shaders/particles.wgsl.
const (
	EntrySeed   = "cs_seed"
	EntryAdvect = "cs_advect"
)

// EffectParams is the uniform block shared by all effect kernels.
// Must match the Params struct in particles.wgsl.
type EffectParams struct {
	SizeX       float32
	SizeY       float32
	DT          float32
	Time        float32
	Intensity   float32
	Chaos       float32
	Speed       float32
	Hue         float32
	GridDensity float32
	Morph       float32
	RotXW       float32
	RotYW       float32
}

// effectParamsSize is the byte size of EffectParams on the GPU.
const effectParamsSize = 48

// compileSPIRV compiles WGSL source to SPIR-V words.
func compileSPIRV(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, err
	}

	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// Effect is one compiled compute kernel plus the layout objects it
// owns. Effects are cached by the provider and survive system
// switches; only Close tears them down.
type Effect struct {
	name string

	module     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	layout     hal.PipelineLayout
	pipeline   hal.ComputePipeline
}

// Name returns the effect identifier.
func (e *Effect) Name() string { return e.name }

// Pipeline returns the compute pipeline for dispatch.
func (e *Effect) Pipeline() hal.ComputePipeline { return e.pipeline }

// newEffect compiles source and builds the pipeline for one entry
// point. The bind layout is fixed: a Params uniform at binding 0 and a
// read-write particle buffer at binding 1.
func newEffect(device hal.Device, name, source, entryPoint string) (*Effect, error) {
	words, err := compileSPIRV(source)
	if err != nil {
		return nil, fmt.Errorf("wgpu: compile %s: %w", name, err)
	}

	e := &Effect{name: name}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  name + "_shader",
		Source: hal.ShaderSource{SPIRV: words},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create shader module for %s: %w", name, err)
	}
	e.module = module

	bindLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: name + "_bind_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: effectParamsSize,
				},
			},
			{
				Binding:    1,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		e.Destroy(device)
		return nil, fmt.Errorf("wgpu: create bind group layout for %s: %w", name, err)
	}
	e.bindLayout = bindLayout

	layout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            name + "_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{bindLayout},
	})
	if err != nil {
		e.Destroy(device)
		return nil, fmt.Errorf("wgpu: create pipeline layout for %s: %w", name, err)
	}
	e.layout = layout

	pipeline, err := device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  name + "_pipeline",
		Layout: layout,
		Compute: hal.ComputeState{
			Module:     module,
			EntryPoint: entryPoint,
		},
	})
	if err != nil {
		e.Destroy(device)
		return nil, fmt.Errorf("wgpu: create compute pipeline for %s: %w", name, err)
	}
	e.pipeline = pipeline

	return e, nil
}

// Destroy releases every GPU object the effect owns. Safe to call
// twice.
func (e *Effect) Destroy(device hal.Device) {
	if device == nil {
		return
	}
	if e.pipeline != nil {
		device.DestroyComputePipeline(e.pipeline)
		e.pipeline = nil
	}
	if e.layout != nil {
		device.DestroyPipelineLayout(e.layout)
		e.layout = nil
	}
	if e.bindLayout != nil {
		device.DestroyBindGroupLayout(e.bindLayout)
		e.bindLayout = nil
	}
	if e.module != nil {
		device.DestroyShaderModule(e.module)
		e.module = nil
	}
}
