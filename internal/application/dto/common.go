package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ErrorResponse cuerpo de error HTTP. Message es el texto mostrado al usuario tal cual.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FormValue texto crudo de un campo de formulario. En JSON acepta string o número,
// así la validación (y el rechazo de valores no numéricos) ocurre en el caso de uso.
type FormValue string

// UnmarshalJSON acepta "5", 5 o null.
func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	*v = FormValue(b)
	return nil
}

// Trimmed devuelve el valor sin espacios alrededor.
func (v FormValue) Trimmed() string { return strings.TrimSpace(string(v)) }

// Int interpreta el valor (sin espacios) como entero en base 10.
// Vacío, decimales o texto no numérico devuelven error.
func (v FormValue) Int() (int, error) {
	return strconv.Atoi(v.Trimmed())
}
