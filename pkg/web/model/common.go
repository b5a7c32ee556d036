package model

// Links HATEOAS 链接，只输出非空项
type Links struct {
	User  string `json:"user,omitempty"`
	Album string `json:"album,omitempty"`
	Photo string `json:"photo,omitempty"`
}

type (
	// CreatedRes 新建资源的 id 与访问链接
	CreatedRes struct {
		ID    int64 `json:"id"`
		Links Links `json:"links"`
	}

	LinksRes struct {
		Links Links `json:"links"`
	}

	ErrorRes struct {
		Error string `json:"error"`
	}
)
