package store

import "github.com/recetasnicas/recipebook-be/internal/models"

// seedRecipes returns the public starter catalog written on first run.
func seedRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:   "1",
			Name: "Gallo Pinto",
			Ingredients: []string{
				"2 tazas de arroz cocido (del día anterior)",
				"1 taza de frijoles rojos cocidos (con su caldo)",
				"1/2 cebolla picada",
				"1/4 taza de chiltoma (pimiento verde) picada",
				"2 dientes de ajo picados",
				"2 cucharadas de aceite vegetal",
				"Sal al gusto",
			},
			Instructions: []string{
				"Calentar el aceite en una sartén grande a fuego medio.",
				"Sofreír la cebolla, la chiltoma y el ajo hasta que estén suaves y fragantes.",
				"Añadir los frijoles cocidos con un poco de su caldo y cocinar por unos minutos, aplastando algunos frijoles para espesar.",
				"Incorporar el arroz cocido y mezclar bien, asegurándose de que el arroz se impregne del color y sabor de los frijoles. Cocinar hasta que el líquido se evapore y el gallo pinto esté seco y suelto.",
				"Servir caliente, idealmente con huevo, queso, o carne asada.",
			},
			Image: "https://placehold.co/150x100/4a00e0/ffffff?text=Gallo+Pinto",
		},
		{
			ID:   "2",
			Name: "Vigorón",
			Ingredients: []string{
				"2 tazas de yuca cocida y troceada",
				"1 taza de chicharrón (cueritos de cerdo fritos)",
				"1/2 repollo finamente picado",
				"2 tomates picados",
				"1 cebolla morada encurtida (con vinagre y sal)",
				"Chile al gusto",
				"Sal al gusto",
			},
			Instructions: []string{
				"En un plato, colocar una cama de hojas de plátano (opcional).",
				"Disponer la yuca cocida en trozos.",
				"Cubrir con el chicharrón.",
				"Mezclar el repollo picado con el tomate y la cebolla encurtida. Añadir sal y chile al gusto.",
				"Colocar la mezcla de repollo sobre el chicharrón.",
				"Servir inmediatamente.",
			},
			Premium: true,
			Image:   "https://placehold.co/150x100/00c6ff/ffffff?text=Vigoron",
		},
		{
			ID:   "3",
			Name: "Nacatamal",
			Ingredients: []string{
				"Masa de maíz para nacatamales",
				"Carne de cerdo o pollo",
				"Arroz",
				"Papas",
				"Hierbabuena",
				"Tomate, cebolla, chiltoma (para el recado)",
				"Naranja agria",
				"Hojas de plátano",
				"Achiote",
				"Sal y pimienta",
			},
			Instructions: []string{
				"Preparar la masa con achiote y sal.",
				"Marinar la carne con naranja agria y especias.",
				"Preparar el recado con vegetales sofritos.",
				"Extender las hojas de plátano, colocar la masa, luego la carne, arroz, papas y recado.",
				"Envolver cuidadosamente y amarrar.",
				"Cocer en agua hirviendo por varias horas.",
			},
			Image: "https://placehold.co/150x100/f7971e/ffffff?text=Nacatamal",
		},
	}
}
