package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/estoque-meias/internal/domain/catalog"
	"github.com/jhoicas/estoque-meias/internal/domain/entity"
)

func names(ps []entity.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func products(ns ...string) []entity.Product {
	out := make([]entity.Product, 0, len(ns))
	for i, n := range ns {
		out = append(out, entity.Product{ID: string(rune('a' + i)), Name: n})
	}
	return out
}

func TestOrder_IgnoraMayusculas(t *testing.T) {
	got := catalog.Order(products("Meia Azul", "meia amarela"))
	assert.Equal(t, []string{"meia amarela", "Meia Azul"}, names(got))
}

func TestOrder_AcentosPorLetraBase(t *testing.T) {
	got := catalog.Order(products("Meia Zebra", "Meia Árvore", "meia arrastão", "Meia Bege"))
	assert.Equal(t, []string{"meia arrastão", "Meia Árvore", "Meia Bege", "Meia Zebra"}, names(got))
}

func TestOrder_EstableEnEmpates(t *testing.T) {
	in := []entity.Product{
		{ID: "1", Name: "Meia Única"},
		{ID: "2", Name: "meia unica"},
		{ID: "3", Name: "Ano"},
		{ID: "4", Name: "MEIA ÚNICA"},
	}
	got := catalog.Order(in)
	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"3", "1", "2", "4"}, ids)
}

func TestOrder_NoModificaLaEntrada(t *testing.T) {
	in := products("b", "a")
	_ = catalog.Order(in)
	assert.Equal(t, []string{"b", "a"}, names(in))
}

func TestOrder_Vacio(t *testing.T) {
	assert.Empty(t, catalog.Order(nil))
}
