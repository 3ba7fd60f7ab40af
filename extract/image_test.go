package extract

import "testing"

func TestPipeline_SrcsetPicksLargest(t *testing.T) {
	html := `<html><body><div class="product-image">
		<img srcset="https://cdn.example.com/small.jpg 200w, https://cdn.example.com/large.jpg 800w, https://cdn.example.com/medium.jpg 400w">
		</div></body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Image != "https://cdn.example.com/large.jpg" {
		t.Errorf("Image = %q, want largest srcset entry", cand.Image)
	}
}

func TestPipeline_LazyLoadAttributes(t *testing.T) {
	html := `<html><body>
		<img class="product-photo" data-src="https://cdn.example.com/lazy.jpg">
		</body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Image != "https://cdn.example.com/lazy.jpg" {
		t.Errorf("Image = %q, want data-src value", cand.Image)
	}
}

func TestPipeline_ImgScanSkipsChrome(t *testing.T) {
	html := `<html><body>
		<img src="https://cdn.example.com/site-logo.png">
		<img src="https://cdn.example.com/cart-icon.svg">
		<img src="https://cdn.example.com/photo.jpg" width="600" height="600">
		</body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Image != "https://cdn.example.com/photo.jpg" {
		t.Errorf("Image = %q, want the non-chrome image", cand.Image)
	}
}

func TestPipeline_ImgScanSkipsSmallImages(t *testing.T) {
	html := `<html><body>
		<img src="https://cdn.example.com/thumb.jpg" width="50" height="50">
		<img src="https://cdn.example.com/unsized.jpg">
		</body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Image != "https://cdn.example.com/unsized.jpg" {
		t.Errorf("Image = %q, want the unsized image", cand.Image)
	}
}

func TestPipeline_ImgScanSkipsDataURIs(t *testing.T) {
	html := `<html><body>
		<img src="data:image/gif;base64,R0lGOD">
		</body></html>`

	cand := newTestPipeline().Run(mustParse(t, html))

	if cand.Image != "" {
		t.Errorf("Image = %q, want no candidate", cand.Image)
	}
}

func TestSrcsetLargest(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"widths", "a.jpg 100w, b.jpg 300w, c.jpg 200w", "b.jpg"},
		{"no widths takes first", "a.jpg, b.jpg", "a.jpg"},
		{"placeholder skipped", "placeholder.jpg 900w, real.jpg 100w", "real.jpg"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := srcsetLargest(tt.in); got != tt.want {
				t.Errorf("srcsetLargest(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"200w", 200},
		{"200", 200},
		{"w200", 0},
		{"", 0},
		{"12x", 12},
	}

	for _, tt := range tests {
		if got := leadingInt(tt.in); got != tt.want {
			t.Errorf("leadingInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
