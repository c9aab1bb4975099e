package naiapi

import (
	"errors"
	"testing"
)

func TestParseDirectorParams(t *testing.T) {
	params, err := parseDirectorParams("  ")
	if err != nil {
		t.Errorf("blank director params should be accepted, got: %v", err)
	}
	if params != nil {
		t.Errorf("blank director params should yield no map, got: %v", params)
	}

	params, err = parseDirectorParams(`{"qualityToggle": false, "ucPreset": 2}`)
	if err != nil {
		t.Fatalf("failed to parse director params: %v", err)
	}
	if params["qualityToggle"] != false {
		t.Errorf("expected qualityToggle false, got: %v", params["qualityToggle"])
	}
}

func TestParseDirectorParamsMalformed(t *testing.T) {
	if _, err := parseDirectorParams(`{bad json`); !errors.Is(err, ErrInvalidDirectorJSON) {
		t.Errorf("expected ErrInvalidDirectorJSON, got: %v", err)
	}
}

func TestParseDirectorParamsNotObject(t *testing.T) {
	if _, err := parseDirectorParams(`[1,2]`); !errors.Is(err, ErrDirectorParamsNotObject) {
		t.Errorf("expected ErrDirectorParamsNotObject, got: %v", err)
	}
}

func TestBuildPayloadMergesDirectorParams(t *testing.T) {
	client := NewClient(ClientConfig{})
	request := &GenerationRequest{
		Prompt:         "a lighthouse at dusk",
		NegativePrompt: "blurry",
		Width:          832,
		Height:         1216,
		Steps:          28,
		Scale:          6.0,
		Sampler:        DefaultSampler,
		Seed:           -1,
	}
	director := map[string]interface{}{
		"foo":   1,
		"steps": 50,
	}
	payload := client.buildPayload(request, director)

	if payload.Input != "a lighthouse at dusk" {
		t.Errorf("unexpected input: %q", payload.Input)
	}
	if payload.Model != DefaultModel {
		t.Errorf("unexpected model: %q", payload.Model)
	}
	if payload.Action != "generate" {
		t.Errorf("unexpected action: %q", payload.Action)
	}
	if payload.Parameters["foo"] != 1 {
		t.Errorf("director param foo should be merged into parameters, got: %v", payload.Parameters["foo"])
	}
	// last write wins, the director value shadows the builtin steps
	if payload.Parameters["steps"] != 50 {
		t.Errorf("director param should shadow builtin steps, got: %v", payload.Parameters["steps"])
	}
	if payload.Parameters["negative_prompt"] != "blurry" {
		t.Errorf("unexpected negative_prompt: %v", payload.Parameters["negative_prompt"])
	}
}

func TestApplyDefaults(t *testing.T) {
	request := &GenerationRequest{Seed: -1}
	request.applyDefaults()
	if request.Width != 832 || request.Height != 1216 {
		t.Errorf("unexpected default size: %dx%d", request.Width, request.Height)
	}
	if request.Steps != 28 {
		t.Errorf("unexpected default steps: %d", request.Steps)
	}
	if request.Scale != 6.0 {
		t.Errorf("unexpected default scale: %f", request.Scale)
	}
	if request.Sampler != DefaultSampler {
		t.Errorf("unexpected default sampler: %q", request.Sampler)
	}
}

func TestIsValidSampler(t *testing.T) {
	for _, sampler := range Samplers {
		if !IsValidSampler(sampler) {
			t.Errorf("sampler %q should be valid", sampler)
		}
	}
	if IsValidSampler("euler_a") {
		t.Errorf("sampler euler_a should not be valid")
	}
}
