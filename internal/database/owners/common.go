package owners

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}
