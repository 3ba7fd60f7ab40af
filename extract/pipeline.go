package extract

// Extractor proposes a candidate value for one field, or reports no match.
// Extractors never fail: a miss is a valid terminal state for a field.
type Extractor func(d *Document) (string, bool)

// Candidates holds the raw per-field winners of the cascades, prior to
// normalization. Empty string means no extractor matched.
type Candidates struct {
	Title       string
	Price       string
	Image       string
	Description string
}

// Options configures a Pipeline. The selector rankings, price bounds and
// image blocklist are data owned by the pipeline instance, so engines with
// different policies can coexist.
type Options struct {
	// PriceMin and PriceMax bound prices accepted by the CSS price
	// cascade (exclusive).
	PriceMin float64
	PriceMax float64

	// TitleSelectors, PriceSelectors and ImageSelectors override the
	// ranked defaults when non-empty.
	TitleSelectors []string
	PriceSelectors []string
	ImageSelectors []string

	// ImageBlocklist overrides the source keywords excluded from the
	// last-resort image scan.
	ImageBlocklist []string
}

// Pipeline runs a fixed, field-specific cascade of extractors, highest
// reliability first: structured data, then meta tags, then ranked CSS
// selectors, then a heuristic last resort.
type Pipeline struct {
	title       []Extractor
	price       []Extractor
	image       []Extractor
	description []Extractor
}

// NewPipeline builds a pipeline, precompiling all CSS selectors. Invalid
// selectors in Options panic, matching the regexp.MustCompile convention
// for construction-time data.
func NewPipeline(opts Options) *Pipeline {
	if opts.PriceMax <= 0 {
		opts.PriceMax = 100000
	}
	titleSel := opts.TitleSelectors
	if len(titleSel) == 0 {
		titleSel = defaultTitleSelectors
	}
	priceSel := opts.PriceSelectors
	if len(priceSel) == 0 {
		priceSel = defaultPriceSelectors
	}
	imageSel := opts.ImageSelectors
	if len(imageSel) == 0 {
		imageSel = defaultImageSelectors
	}
	blocklist := opts.ImageBlocklist
	if len(blocklist) == 0 {
		blocklist = defaultImageBlocklist
	}

	return &Pipeline{
		title: []Extractor{
			jsonldTitle,
			metaTitle,
			cssTitle(compileAll(titleSel)),
			docTitle,
		},
		price: []Extractor{
			jsonldPrice,
			metaPrice,
			cssPrice(compileAll(priceSel), opts.PriceMin, opts.PriceMax),
		},
		image: []Extractor{
			jsonldImage,
			metaImage,
			cssImage(compileAll(imageSel)),
			imgScan(blocklist),
		},
		description: []Extractor{
			jsonldDescription,
			metaDescription,
			readabilityDescription,
		},
	}
}

// Run executes every field cascade over the document.
func (p *Pipeline) Run(d *Document) Candidates {
	return Candidates{
		Title:       firstOf(d, p.title),
		Price:       firstOf(d, p.price),
		Image:       firstOf(d, p.image),
		Description: firstOf(d, p.description),
	}
}

// firstOf composes extractors with first-match-wins ordering.
func firstOf(d *Document, extractors []Extractor) string {
	for _, ex := range extractors {
		if v, ok := ex(d); ok {
			return v
		}
	}
	return ""
}
