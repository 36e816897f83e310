package seed

import (
	"github.com/ziadkadry99/wonderchile/internal/auth"
	"github.com/ziadkadry99/wonderchile/internal/catalog"
)

const unsplash = "?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80"

// StarterTrips are loaded on first boot when the catalog is empty.
var StarterTrips = []catalog.NewTrip{
	{Title: "Tour Santiago", Description: "City tour completo", Price: 50000},
	{Title: "Cajón del Maipo", Description: "Aventura en la cordillera", Price: 75000},
	{Title: "Torres del Paine", Description: "Experiencia Patagonia", Price: 120000},
}

// SampleUsers are demo accounts created by the seed command.
var SampleUsers = []auth.NewUser{
	{Name: "Admin User", Email: "admin@wonderchile.cl", Password: "admin123", Role: auth.RoleAdmin},
	{Name: "Juan Pérez", Email: "juan@example.com", Password: "password123"},
	{Name: "María González", Email: "maria@example.com", Password: "password123"},
	{Name: "Carlos Rodríguez", Email: "carlos@example.com", Password: "password123"},
}

// SampleTrips covers every trip type.
var SampleTrips = []catalog.NewTrip{
	{Title: "Tour por Santiago", Description: "Descubre la capital de Chile con un tour guiado por los principales atractivos históricos y culturales.", Price: 50000, Image: "/static/uploads/tour_santiago.jpg"},
	{Title: "Aventura en Cajón del Maipo", Description: "Explora el río y las montañas en una emocionante aventura de rafting y trekking.", Price: 75000, Image: "/static/uploads/cajon_maipo.jpg"},
	{Title: "Viñedos de Maipo Valley", Description: "Degusta los mejores vinos chilenos en una visita a los viñedos más prestigiosos del valle.", Price: 60000, Image: "/static/uploads/vinedos_maipo.jpg"},
	{Title: "Puerto Varas y Lagos", Description: "Relájate en los hermosos lagos del sur de Chile con vistas espectaculares.", Price: 80000, Image: "/static/uploads/puerto_varas.jpg"},
	{Title: "Torres del Paine", Description: "Vive la experiencia única del parque nacional **Torres del Paine** con glaciares y fauna.", Price: 120000, Image: "/static/uploads/torres_paine.jpg"},
	{Title: "Desierto de Atacama", Description: "Admira el desierto más árido del mundo con cielos estrellados y geiseres.", Price: 95000, Image: "/static/uploads/atacama.jpg"},
	{Title: "Isla de Pascua", Description: "Explora las misteriosas estatuas moai en la isla más remota del mundo.", Price: 150000, Image: "/static/uploads/isla_pascua.jpg"},
	{Title: "Valparaíso y Viña del Mar", Description: "Disfruta del encanto bohemio de Valparaíso y las playas de Viña del Mar.", Price: 55000, Image: "/static/uploads/valparaiso.jpg"},

	{Title: "Gira Educativa", Description: "Experiencias de aprendizaje únicas para estudiantes de todos los niveles, combinando educación con aventura.", Price: 150000, Image: "https://images.unsplash.com/photo-1523050854058-8df90110c9f1" + unsplash, Type: catalog.TripStudy},
	{Title: "Intercambio Cultural", Description: "Programas de inmersión cultural que permiten a los estudiantes vivir experiencias auténticas en diferentes países.", Price: 200000, Image: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4" + unsplash, Type: catalog.TripStudy},
	{Title: "Investigación Científica", Description: "Giras especializadas para estudiantes de ciencias que incluyen visitas a centros de investigación y laboratorios.", Price: 180000, Image: "https://images.unsplash.com/photo-1469474968028-56623f02e42e" + unsplash, Type: catalog.TripStudy},
	{Title: "Arte y Cultura", Description: "Exploración de museos, galerías y manifestaciones culturales en destinos seleccionados.", Price: 120000, Image: "https://images.unsplash.com/photo-1503676260728-1c00da094a0b" + unsplash, Type: catalog.TripStudy},
	{Title: "Idiomas en el Extranjero", Description: "Programas intensivos de aprendizaje de idiomas con inmersión cultural completa.", Price: 250000, Image: "https://images.unsplash.com/photo-1551632436-cbf8dd35adfa" + unsplash, Type: catalog.TripStudy},
	{Title: "Deportes y Aventura", Description: "Actividades deportivas y de aventura combinadas con aprendizaje y trabajo en equipo.", Price: 160000, Image: "https://images.unsplash.com/photo-1544717297-fa95b6ee9643" + unsplash, Type: catalog.TripStudy},

	{Title: "Viaje Solo Mujeres Patagonia", Description: "Explora la Patagonia chilena en un viaje exclusivo para mujeres, con actividades de aventura y conexión con la naturaleza.", Price: 180000, Image: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4" + unsplash, Type: catalog.TripWomen},
	{Title: "Retiro de Yoga en Viña del Mar", Description: "Un retiro espiritual y relajante en la costa chilena, diseñado exclusivamente para mujeres.", Price: 120000, Image: "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b" + unsplash, Type: catalog.TripWomen},
	{Title: "Tour Cultural Santiago", Description: "Descubre la historia y cultura de Santiago en un tour guiado solo para mujeres.", Price: 80000, Image: "https://images.unsplash.com/photo-1488646953014-85cb44e25828" + unsplash, Type: catalog.TripWomen},
	{Title: "Aventura en Cajón del Maipo", Description: "Actividades de rafting y trekking en el Cajón del Maipo, en un entorno seguro y empoderador para mujeres.", Price: 100000, Image: "https://images.unsplash.com/photo-1464207687429-7505649dae38" + unsplash, Type: catalog.TripWomen},
	{Title: "Viaje de Empoderamiento Femenino", Description: "Un viaje transformador que combina aventura, cultura y empoderamiento personal para mujeres.", Price: 150000, Image: "https://images.unsplash.com/photo-1527631746610-bca00a040d60" + unsplash, Type: catalog.TripWomen},
	{Title: "Exploración del Desierto de Atacama", Description: "Descubre la magia del desierto más árido del mundo en un viaje exclusivo para mujeres.", Price: 200000, Image: "https://images.unsplash.com/photo-1469474968028-56623f02e42e" + unsplash, Type: catalog.TripWomen},
}

// SamplePromotions are demo campaigns.
var SamplePromotions = []catalog.NewPromotion{
	{Title: "Descuento Verano", Description: "Aprovecha un 20% de descuento en todos los tours de verano. ¡No te lo pierdas!", Discount: 20, Image: "/static/uploads/descuento_verano.jpg"},
	{Title: "Paquete Familiar", Description: "Descuento especial del 15% para familias de 4 o más personas en viajes seleccionados.", Discount: 15, Image: "/static/uploads/paquete_familiar.jpg"},
	{Title: "Early Bird", Description: "Reserva con anticipación y obtén un 10% de descuento en tu próximo viaje.", Discount: 10, Image: "/static/uploads/early_bird.jpg"},
	{Title: "Viaje de Luna de Miel", Description: "Descuento romántico del 25% para parejas en su viaje de luna de miel.", Discount: 25, Image: "/static/uploads/luna_miel.jpg"},
	{Title: "Estudiante", Description: "Descuento del 12% para estudiantes con credencial válida en todos los paquetes.", Discount: 12, Image: "/static/uploads/estudiante.jpg"},
}

// SampleContacts are demo contact-form messages.
var SampleContacts = []catalog.NewContact{
	{Name: "Ana López", Email: "ana@example.com", Message: "Estoy interesada en el tour por Santiago. ¿Pueden darme más información?"},
	{Name: "Pedro Martínez", Email: "pedro@example.com", Message: "¿Tienen disponibilidad para el mes de diciembre en Torres del Paine?"},
	{Name: "Sofía Ramírez", Email: "sofia@example.com", Message: "Me gustaría organizar un viaje grupal para 10 personas. ¿Es posible?"},
}
