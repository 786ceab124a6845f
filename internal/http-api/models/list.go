package models

// Well-known list names. Favorites is created at registration and can never
// be deleted; Read and InProgress are maintained as side effects of the
// progress state machine.
const (
	FavoritesList  = "Mis Favoritos"
	ReadList       = "Leídos"
	InProgressList = "En proceso"
)

type List struct {
	Name        string  `json:"nombre" gorm:"column:nombre;primaryKey"`
	UserID      string  `json:"usuario_id" gorm:"column:usuario_id;primaryKey"`
	Description string  `json:"descripcion" gorm:"column:descripcion;type:text"`
	Public      bool    `json:"publica" gorm:"column:publica;default:false"`
	Cover       *string `json:"portada,omitempty" gorm:"column:portada;type:text"`
}

func (List) TableName() string {
	return "lista"
}

// ListItem carries no payload beyond the relation itself.
type ListItem struct {
	UserID   string `json:"usuario_id" gorm:"column:usuario_id;primaryKey"`
	ListName string `json:"nombre_lista" gorm:"column:nombre_lista;primaryKey"`
	BookLink string `json:"enlace_libro" gorm:"column:enlace_libro;primaryKey"`
}

func (ListItem) TableName() string {
	return "libros_lista"
}
