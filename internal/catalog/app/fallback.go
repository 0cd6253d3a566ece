package app

import (
	"github.com/shopspring/decimal"

	"github.com/ateliershop/storefront/internal/catalog/domain"
)

// FallbackProducts is the fixed catalog substituted when the external
// source cannot be loaded. It mirrors the shipped products.json.
func FallbackProducts() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "Sunset Over Mountains", Category: domain.CategoryPainting,
			Price: decimal.NewFromInt(899), Image: "🎨", Featured: true,
			Description:      "A breathtaking oil painting capturing the golden hour over majestic mountains. This piece brings warmth and serenity to any space.",
			Details:          "Oil on canvas, 36x24 inches, Signed by artist",
			ShortDescription: "Golden hour mountain landscape",
		},
		{
			ID: 2, Name: "Abstract Dreams", Category: domain.CategoryPainting,
			Price: decimal.NewFromInt(650), Image: "🖼️", Featured: true,
			Description:      "An imaginative abstract painting with bold colors and dynamic shapes. Perfect for modern and contemporary interiors.",
			Details:          "Acrylic on canvas, 30x30 inches, Certificate of authenticity",
			ShortDescription: "Modern abstract mixed media",
		},
		{
			ID: 3, Name: "Philosophical Musings", Category: domain.CategoryBook,
			Price: decimal.NewFromInt(45), Image: "📚", Featured: true,
			Description:      "A collection of thought-provoking essays and reflections on art, life, and human connection. Beautifully illustrated throughout.",
			Details:          "Hardcover, 256 pages, Limited edition",
			ShortDescription: "Essays on art and philosophy",
		},
		{
			ID: 4, Name: "Ocean's Whisper", Category: domain.CategoryPainting,
			Price: decimal.NewFromInt(750), Image: "🌊",
			Description:      "A serene seascape with gentle waves and soft colors. Evokes the peaceful energy of the ocean.",
			Details:          "Watercolor on paper, 24x18 inches",
			ShortDescription: "Coastal seascape",
		},
		{
			ID: 5, Name: "The Artist's Journey", Category: domain.CategoryBook,
			Price: decimal.NewFromInt(38), Image: "📖",
			Description:      "An autobiography documenting the creative journey and personal transformations of an artist. Filled with inspiring stories and beautiful illustrations.",
			Details:          "Paperback, 320 pages, Full-color illustrations",
			ShortDescription: "Personal art journey memoir",
		},
		{
			ID: 6, Name: "Forest Sanctuary", Category: domain.CategoryPainting,
			Price: decimal.NewFromInt(580), Image: "🌲",
			Description:      "A lush forest scene with vibrant greens and hidden creatures. Brings nature's tranquility into your home.",
			Details:          "Mixed media, 28x22 inches",
			ShortDescription: "Nature-inspired forest artwork",
		},
		{
			ID: 7, Name: "Color Theory Exploration", Category: domain.CategoryBook,
			Price: decimal.NewFromInt(52), Image: "📕",
			Description:      "A comprehensive guide to understanding colors in art. Includes techniques, theory, and stunning visual examples.",
			Details:          "Hardcover, 288 pages, Interactive samples included",
			ShortDescription: "Color theory and techniques guide",
		},
		{
			ID: 8, Name: "Urban Reflections", Category: domain.CategoryPainting,
			Price: decimal.NewFromInt(620), Image: "🏙️",
			Description:      "A contemporary piece exploring the reflection of buildings in water. Modern and striking composition.",
			Details:          "Acrylic on canvas, 32x24 inches",
			ShortDescription: "Contemporary urban landscape",
		},
		{
			ID: 9, Name: "Techniques Masterclass", Category: domain.CategoryBook,
			Price: decimal.NewFromInt(60), Image: "📗",
			Description:      "Learn advanced painting techniques from a professional artist. Step-by-step instructions with photography.",
			Details:          "Hardcover, 400 pages, Dust jacket included",
			ShortDescription: "Painting techniques tutorial",
		},
		{
			ID: 10, Name: "Starlight Symphony", Category: domain.CategoryPainting,
			Price: decimal.NewFromInt(925), Image: "⭐",
			Description:      "A magical night sky painting with stars and constellations. Evokes wonder and cosmic beauty.",
			Details:          "Oil on canvas, 40x30 inches, Signed and dated",
			ShortDescription: "Celestial starry night",
		},
	}
}
