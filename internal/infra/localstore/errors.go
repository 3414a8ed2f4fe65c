package localstore

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации коллекции
	ErrEncode = errors.New("localstore: failed to encode collection")

	// ErrWriteFile возвращается при ошибке записи файла хранилища
	ErrWriteFile = errors.New("localstore: failed to write store file")
)
