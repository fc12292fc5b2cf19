package store

import (
	"time"

	"github.com/shopspring/decimal"

	"fedashop/internal/domain"
)

const unsplash = "https://images.unsplash.com/"

// Seed returns the fixed starter catalog, stamped with createdAt.
func Seed(createdAt time.Time) []domain.Product {
	mk := func(id, name, desc, price, img, cat string, stock int, rating string, reviews int, featured bool) domain.Product {
		return domain.Product{
			ID:            id,
			Name:          name,
			Description:   desc,
			Price:         domain.MustMoney(price),
			ImageURL:      unsplash + img + "?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Category:      cat,
			InStock:       true,
			StockQuantity: stock,
			Rating:        decimal.RequireFromString(rating),
			ReviewCount:   reviews,
			Featured:      featured,
			CreatedAt:     createdAt,
		}
	}
	return []domain.Product{
		mk("1", "سيروم الوجه الطبيعي", "سيروم مركز للعناية بالبشرة مصنوع من المكونات الطبيعية",
			"150.00", "photo-1571781926291-c477ebfd024b", "skincare", 25, "5.0", 24, true),
		mk("2", "عسل الأكاسيا النقي", "عسل طبيعي نقي 100% من أزهار الأكاسيا البرية",
			"85.00", "photo-1587049352846-4a222e784d38", "organic-foods", 15, "5.0", 18, true),
		mk("3", "زيت اللافندر العطري", "زيت عطري نقي من اللافندر للاسترخاء والهدوء",
			"120.00", "photo-1608571423902-eed4a5ad8108", "essential-oils", 30, "5.0", 32, true),
		mk("4", "شاي الأعشاب المخلوط", "خلطة متميزة من الأعشاب الطبيعية للصحة والعافية",
			"65.00", "photo-1627825296022-d3ce060f72a6", "herbal-remedies", 20, "4.0", 15, true),
		mk("5", "صابون الأعشاب الطبيعي", "صابون مصنوع يدوياً من المكونات الطبيعية",
			"45.00", "photo-1556909088-95d5240ac8fd", "skincare", 40, "5.0", 28, true),
		mk("6", "زيت جوز الهند العضوي", "زيت جوز هند بكر مضغوط على البارد",
			"95.00", "photo-1474979266404-7eaacbcd87c5", "organic-foods", 18, "4.0", 21, false),
		mk("7", "قناع الطين الطبيعي", "قناع منقي للوجه من الطين الطبيعي والعسل",
			"75.00", "photo-1556228720-195a672e8a03", "skincare", 22, "5.0", 19, false),
		mk("8", "الشاي الأخضر العضوي", "شاي أخضر عضوي عالي الجودة غني بمضادات الأكسدة",
			"55.00", "photo-1556228453-efd6c1ff04f6", "organic-foods", 35, "5.0", 26, false),
	}
}
