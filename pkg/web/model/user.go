package model

import (
	albummodel "photo-share/pkg/core/album/model"
	photomodel "photo-share/pkg/core/photo/model"
)

// 请求/响应数据结构
type (
	// RegisterRes 注册成功，_id 为文档主键，links.user 指向按 userID 访问的资料页
	RegisterRes struct {
		ID    string `json:"_id"`
		Links Links  `json:"links"`
	}

	LoginRes struct {
		Token string `json:"token"`
	}

	UserAlbumsRes struct {
		Albums []albummodel.Album `json:"albums"`
	}

	UserPhotosRes struct {
		Photos []photomodel.Photo `json:"photos"`
	}
)
