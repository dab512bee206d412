package docgen

// BlockStyle describes how a block is rendered inside a section.
type BlockStyle int

const (
	// StyleParagraph is a plain body paragraph.
	StyleParagraph BlockStyle = iota
	// StyleBullet is an indented bullet line.
	StyleBullet
	// StyleLabel is a bold inline label introducing a group of bullets.
	StyleLabel
)

// Block is one renderable unit of text.
type Block struct {
	Text  string
	Style BlockStyle
}

// Section is a named block of a rendered document with ordered content.
type Section struct {
	Heading string
	Blocks  []Block
}

// Header is the contact block at the top of a resume.
type Header struct {
	Name    string
	Contact string
}

// Document is the renderer-independent document shape. Both the PDF and
// DOCX renderers consume the same assembled Document, so format choice
// never changes section content or ordering.
type Document struct {
	Kind     Kind
	Header   Header
	Sections []Section
}
