package model

import "fmt"

// FormatBRL renders a currency value the way the dashboard displays it:
// "R$ " prefix with a dot decimal separator (e.g. "R$ 89.90"). The dot is
// kept on purpose even though pt-BR convention would use a comma.
func FormatBRL(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}
