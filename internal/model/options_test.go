package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestQuality_Height(t *testing.T) {
	tests := []struct {
		quality Quality
		height  string
		ok      bool
	}{
		{"1080p", "1080", true},
		{"720P", "720", true},
		{" 480p ", "480", true},
		{"best", "", false},
		{"worst", "", false},
		{"p", "", false},
		{"12a4p", "", false},
		{"-720p", "", false},
		{"720", "", false},
		{"", "", false},
	}

	for _, test := range tests {
		height, ok := test.quality.Height()
		if height != test.height || ok != test.ok {
			t.Errorf("Quality(%q).Height() = (%q, %v), expected (%q, %v)", test.quality, height, ok, test.height, test.ok)
		}
	}
}

func TestMediaType_IsValid(t *testing.T) {
	for _, m := range MediaTypes() {
		if !m.IsValid() {
			t.Errorf("MediaType %s should be valid", m)
		}
	}
	if MediaType("both").IsValid() {
		t.Error("unknown media type should not be valid")
	}
}

func TestParseURLs(t *testing.T) {
	got := ParseURLs("  https://a.example/1 https://a.example/2\n\thttps://a.example/3  ")
	want := []string{"https://a.example/1", "https://a.example/2", "https://a.example/3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseURLs() = %v, expected %v", got, want)
	}

	if got := ParseURLs("   "); len(got) != 0 {
		t.Errorf("ParseURLs() on blank input = %v, expected empty", got)
	}
}

func TestOptions_Validate(t *testing.T) {
	valid := Options{
		URLs:      []string{"https://youtube.com/watch?v=test"},
		MediaType: MediaAudioVideo,
		Quality:   QualityBest,
		OutputDir: "/tmp",
	}

	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr error
	}{
		{"valid options", func(o *Options) {}, nil},
		{"no URLs", func(o *Options) { o.URLs = nil }, ErrNoURLs},
		{"blank output dir", func(o *Options) { o.OutputDir = "  " }, ErrNoOutputDir},
		{"unknown media type", func(o *Options) { o.MediaType = "both" }, ErrInvalidMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid.Clone()
			tt.mutate(&o)
			err := o.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, expected %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptions_Clone(t *testing.T) {
	o := Options{URLs: []string{"a", "b"}}
	c := o.Clone()
	c.URLs[0] = "changed"

	if o.URLs[0] != "a" {
		t.Error("Clone should not share the URL slice")
	}
}
