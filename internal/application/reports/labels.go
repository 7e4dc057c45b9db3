package reports

// Etiquetas de presentación en español para los exportadores. El dominio y la
// persistencia trabajan siempre con los códigos; la traducción ocurre solo al
// generar salida para humanos.
var (
	CategoryLabels = map[string]string{
		"fixed_assets": "Activos Fijos",
		"materials":    "Materiales",
		"goods":        "Mercancías",
		"inventory":    "Inventario",
	}
	StatusLabels = map[string]string{
		"active":   "Activo",
		"inactive": "Inactivo",
		"repair":   "En Reparación",
		"disposed": "Dado de Baja",
	}
	OperationLabels = map[string]string{
		"receipt":    "Recepción",
		"transfer":   "Traslado",
		"disposal":   "Baja",
		"adjustment": "Ajuste",
	}
)

// Label devuelve la etiqueta del código, o el código mismo si no hay traducción.
func Label(m map[string]string, code string) string {
	if label, ok := m[code]; ok {
		return label
	}
	return code
}
