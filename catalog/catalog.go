// Package catalog holds the static, read-only list of purchasable
// products. The list is loaded once and never mutated.
package catalog

import "boutique/models"

// Provider exposes the product list and lookup-by-id. The static catalog
// satisfies it; a database-backed catalog could be swapped in behind the
// same interface.
type Provider interface {
	Products() []models.Product
	FindProductByID(productID string) (models.Product, bool)
}

var products = []models.Product{
	{
		ID:   "regina-inimii",
		Name: "Regina Inimii",
		Description: "Un aranjament spectaculos cu trandafiri roșii de catifea, încoronat cu o diademă strălucitoare " +
			"și mesajul „Te-am ales pentru o viață!”. Perfect pentru declarații de dragoste regale.",
		Price:    "749.00",
		Image:    "/products/regina-inimii.png",
		Category: "Signature",
	},
	{
		ID:   "scarlet-confession",
		Name: "Confesiune Scarlet",
		Description: "Buchet compact din trandafiri roșii, cu detalii de cristale și o inimă albă centrală. " +
			"Ideal pentru momente intime în care spui „Te iubesc” cu emoție.",
		Price:    "249.00",
		Image:    "/products/confesiune-scarlet.png",
		Category: "Romantic",
	},
	{
		ID:   "simfonie-roz",
		Name: "Simfonie Roz",
		Description: "Armonie grațioasă de trandafiri fuchsia și albi, îmbrăcați în straturi delicate de voal. " +
			"Panglica „Te iubesc!” transformă buchetul într-o promisiune a iubirii nepieritoare.",
		Price:    "499.00",
		Image:    "/products/simfonie-roz.png",
		Category: "Romantic",
	},
	{
		ID:   "albastru-imperial",
		Name: "Albastru Imperial",
		Description: "Trandafiri safir cu accente de cristale, îmbrățișați de tonuri albastre și un tiara argintie. " +
			"Un gest nobil pentru persoana care îți guvernează inima.",
		Price:    "699.00",
		Image:    "/products/albastru-imperial.png",
		Category: "Signature",
	},
	{
		ID:   "iarta-ma-pui",
		Name: "Iartă-mă, Pui",
		Description: "Trandafiri fuchsia cu sclipiri discrete, purtând mesajul sincer „Iartă-mă, pui!”. " +
			"Un buchet vibrant pentru împăcare din toată inima.",
		Price:    "389.00",
		Image:    "/products/iarta-ma-pui.png",
		Category: "Reconciliation",
	},
	{
		ID:   "lavanda-de-vis",
		Name: "Lavandă de Vis",
		Description: "Culori pastelate de lavandă și crem, echilibrate într-un buchet de poveste cu trandafiri " +
			"mătăsoși și perlute discrete. Ideal pentru momente tandre și aniversări elegante.",
		Price:    "439.00",
		Image:    "/products/lavanda-de-vis.png",
		Category: "Elegance",
	},
}

// StaticCatalog serves the built-in product list.
type StaticCatalog struct{}

// NewStaticCatalog returns the static catalog provider.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}

// Products returns the ordered product list. Callers must not mutate the
// returned slice.
func (c *StaticCatalog) Products() []models.Product {
	return products
}

// FindProductByID looks up a product by its stable id.
func (c *StaticCatalog) FindProductByID(productID string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == productID {
			return p, true
		}
	}
	return models.Product{}, false
}
