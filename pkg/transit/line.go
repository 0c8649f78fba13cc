package transit

type Line struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Mot     string `json:"mot"`
	MotName string `json:"mot_name"`

	Directions []string `json:"directions"`
}
