package generation

import (
	"context"
	"testing"

	"github.com/Dx4Harsh/image-generate-server/internal/infrastructure/inference"
	"github.com/Dx4Harsh/image-generate-server/internal/utils/platformerrors"
)

func testPayload() *inference.GenerationPayload {
	return &inference.GenerationPayload{
		Model:          "black-forest-labs/FLUX.1-schnell-Free",
		Prompt:         "a cat",
		Width:          1024,
		Height:         1024,
		Steps:          12,
		N:              1,
		NegativePrompt: "blurry",
		GuidanceScale:  7.5,
	}
}

func TestTranslateMixedEntries(t *testing.T) {
	result := &inference.GenerationResult{
		Data: []inference.ImageEntry{
			{URL: "https://img.example/x.png"},
			{B64JSON: "aGVsbG8="},
			{},
		},
	}

	resp, err := Translate(context.Background(), result, testPayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success")
	}
	if len(resp.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(resp.Images))
	}

	first := resp.Images[0]
	if first.Kind != ImageKindURL || first.URL != "https://img.example/x.png" || first.Index != 0 {
		t.Fatalf("unexpected first image: %+v", first)
	}

	second := resp.Images[1]
	if second.Kind != ImageKindBase64 || second.B64JSON != "aGVsbG8=" || second.Index != 1 {
		t.Fatalf("unexpected second image: %+v", second)
	}
}

func TestTranslateURLTakesPriority(t *testing.T) {
	result := &inference.GenerationResult{
		Data: []inference.ImageEntry{
			{URL: "https://img.example/x.png", B64JSON: "aGVsbG8="},
		},
	}

	resp, err := Translate(context.Background(), result, testPayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img := resp.Images[0]
	if img.Kind != ImageKindURL {
		t.Fatalf("expected URL variant, got %q", img.Kind)
	}
	if img.B64JSON != "" {
		t.Fatalf("base64 payload should not be carried on the URL variant")
	}
}

func TestTranslateIndexPreservedOverSkips(t *testing.T) {
	result := &inference.GenerationResult{
		Data: []inference.ImageEntry{
			{},
			{URL: "https://img.example/y.png"},
			{},
			{B64JSON: "d29ybGQ="},
		},
	}

	resp, err := Translate(context.Background(), result, testPayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(resp.Images))
	}
	if resp.Images[0].Index != 1 {
		t.Fatalf("expected first surviving index 1, got %d", resp.Images[0].Index)
	}
	if resp.Images[1].Index != 3 {
		t.Fatalf("expected second surviving index 3, got %d", resp.Images[1].Index)
	}
}

func TestTranslateEmptyDataFails(t *testing.T) {
	for _, result := range []*inference.GenerationResult{
		nil,
		{},
		{Data: []inference.ImageEntry{}},
	} {
		_, err := Translate(context.Background(), result, testPayload())
		if err == nil {
			t.Fatalf("expected error for %+v", result)
		}
		perr, ok := err.(*platformerrors.PlatformError)
		if !ok {
			t.Fatalf("expected PlatformError, got %T", err)
		}
		if perr.GetUUID() != "no-images-generated" {
			t.Fatalf("expected no-images-generated, got %q", perr.GetUUID())
		}
		if perr.HTTPStatus() != 500 {
			t.Fatalf("expected 500, got %d", perr.HTTPStatus())
		}
	}
}

func TestTranslateAllSkippedIsSuccess(t *testing.T) {
	result := &inference.GenerationResult{
		Data: []inference.ImageEntry{{}, {}},
	}

	resp, err := Translate(context.Background(), result, testPayload())
	if err != nil {
		t.Fatalf("expected success with zero images, got %v", err)
	}
	if !resp.Success || len(resp.Images) != 0 {
		t.Fatalf("expected success with zero images, got %+v", resp)
	}
}

func TestTranslateEchoesEffectiveParameters(t *testing.T) {
	payload := testPayload()
	result := &inference.GenerationResult{
		Data: []inference.ImageEntry{{URL: "https://img.example/x.png"}},
	}

	resp, err := Translate(context.Background(), result, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Prompt != payload.Prompt || resp.Model != payload.Model {
		t.Fatalf("prompt/model not echoed: %+v", resp)
	}
	if resp.Parameters != *payload {
		t.Fatalf("effective parameters not echoed: %+v", resp.Parameters)
	}
	if resp.Timestamp.IsZero() {
		t.Fatalf("timestamp not set")
	}
}
