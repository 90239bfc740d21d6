package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/estoque-meias/internal/domain/entity"
)

// Order devuelve una copia de products ordenada por nombre según la colación pt-BR,
// ignorando mayúsculas y acentos (comparación por letra base). El orden es estable:
// nombres equivalentes conservan su posición relativa. No modifica la entrada.
func Order(products []entity.Product) []entity.Product {
	out := make([]entity.Product, len(products))
	copy(out, products)
	// collate.Collator no es seguro para uso concurrente: uno por llamada.
	c := collate.New(language.BrazilianPortuguese, collate.Loose)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
