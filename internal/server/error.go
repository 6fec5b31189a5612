package server

import "textsteg/api"

var (
	errRequestBodyDecode = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errRequestTooLarge   = api.Error{Code: "request_too_large", Error: "Request body exceeds the maximum allowed size"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errEmptyMessage      = api.Error{Code: "empty_message", Error: "Please enter some text to hide"}
	errInvalidMessage    = api.Error{Code: "invalid_message", Error: "Text contains characters that cannot be hidden without loss"}
	errCapacityExceeded  = api.Error{Code: "capacity_exceeded", Error: "Text is too long for this image"}
	errMessageNotFound   = api.Error{Code: "message_not_found", Error: "No valid hidden message found in this image"}
	errEncode            = api.Error{Code: "encode_error", Error: "An error occurred while encoding the image"}
)
