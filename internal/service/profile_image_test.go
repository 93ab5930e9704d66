package service

import (
	"testing"

	"planpulse-api/internal/dto"
	"planpulse-api/internal/response"
)

func imageUpload(name, contentType string, data []byte) *dto.ProfileImageUpload {
	return &dto.ProfileImageUpload{
		FileName:    name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}
}

func pad(prefix []byte, total int) []byte {
	out := make([]byte, total)
	copy(out, prefix)
	return out
}

func TestValidateProfileImage(t *testing.T) {
	jpegBytes := pad([]byte{0xFF, 0xD8, 0xFF, 0xE0}, 64)
	pngBytes := pad([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, 64)
	gifBytes := pad([]byte("GIF89a"), 64)
	bmpBytes := pad([]byte("BM"), 64)
	webpBytes := pad(append([]byte("RIFF\x00\x00\x00\x00"), []byte("WEBP")...), 64)

	tests := []struct {
		name    string
		upload  *dto.ProfileImageUpload
		wantExt string
		wantErr bool
	}{
		{
			name:    "jpeg accepted",
			upload:  imageUpload("me.jpg", "image/jpeg", jpegBytes),
			wantExt: ".jpg",
		},
		{
			name:    "jpeg with long extension",
			upload:  imageUpload("me.jpeg", "image/jpeg", jpegBytes),
			wantExt: ".jpeg",
		},
		{
			name:    "png accepted",
			upload:  imageUpload("me.png", "image/png", pngBytes),
			wantExt: ".png",
		},
		{
			name:    "gif accepted",
			upload:  imageUpload("me.gif", "image/gif", gifBytes),
			wantExt: ".gif",
		},
		{
			name:    "bmp accepted",
			upload:  imageUpload("me.bmp", "image/bmp", bmpBytes),
			wantExt: ".bmp",
		},
		{
			name:    "webp accepted",
			upload:  imageUpload("me.webp", "image/webp", webpBytes),
			wantExt: ".webp",
		},
		{
			name:    "uppercase extension is normalized",
			upload:  imageUpload("ME.PNG", "image/png", pngBytes),
			wantExt: ".png",
		},
		{
			name:    "nil upload",
			upload:  nil,
			wantErr: true,
		},
		{
			name:    "empty payload",
			upload:  imageUpload("me.png", "image/png", nil),
			wantErr: true,
		},
		{
			name: "oversize payload",
			upload: &dto.ProfileImageUpload{
				FileName:    "me.png",
				ContentType: "image/png",
				Size:        maxProfileImageSize + 1,
				Data:        pngBytes,
			},
			wantErr: true,
		},
		{
			name:    "unsupported content type",
			upload:  imageUpload("me.png", "image/tiff", pngBytes),
			wantErr: true,
		},
		{
			name:    "unsupported extension",
			upload:  imageUpload("me.svg", "image/png", pngBytes),
			wantErr: true,
		},
		{
			name:    "no extension at all",
			upload:  imageUpload("avatar", "image/png", pngBytes),
			wantErr: true,
		},
		{
			name:    "unrecognizable bytes",
			upload:  imageUpload("me.png", "image/png", pad([]byte("<script>"), 64)),
			wantErr: true,
		},
		{
			name:    "jpeg bytes under a png name",
			upload:  imageUpload("me.png", "image/png", jpegBytes),
			wantErr: true,
		},
		{
			name:    "png bytes declared as jpeg",
			upload:  imageUpload("me.png", "image/jpeg", pngBytes),
			wantErr: true,
		},
		{
			name:    "extension disagrees with content type",
			upload:  imageUpload("me.gif", "image/png", pngBytes),
			wantErr: true,
		},
		{
			name:    "riff container that is not webp",
			upload:  imageUpload("me.webp", "image/webp", pad(append([]byte("RIFF\x00\x00\x00\x00"), []byte("WAVE")...), 64)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, err := validateProfileImage(tt.upload)

			if tt.wantErr {
				if err == nil {
					t.Error("validateProfileImage() error = nil, want validation error")
					return
				}
				if appErr, ok := err.(*response.AppError); !ok || appErr.Code != response.ErrCodeValidation {
					t.Errorf("validateProfileImage() error = %v, want code %v", err, response.ErrCodeValidation)
				}
				return
			}
			if err != nil {
				t.Errorf("validateProfileImage() unexpected error = %v", err)
				return
			}
			if ext != tt.wantExt {
				t.Errorf("validateProfileImage() ext = %v, want %v", ext, tt.wantExt)
			}
		})
	}
}

func TestDetectImageType(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "jpeg", data: []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00}, want: "jpeg"},
		{name: "png", data: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}, want: "png"},
		{name: "gif87a", data: []byte("GIF87a trailer"), want: "gif"},
		{name: "gif89a", data: []byte("GIF89a trailer"), want: "gif"},
		{name: "bmp", data: []byte("BM\x00\x00\x00"), want: "bmp"},
		{name: "webp", data: []byte("RIFF\x10\x00\x00\x00WEBPVP8 "), want: "webp"},
		{name: "truncated png header", data: []byte{0x89, 0x50, 0x4E}, want: ""},
		{name: "riff without webp", data: []byte("RIFF\x10\x00\x00\x00WAVEfmt "), want: ""},
		{name: "empty", data: nil, want: ""},
		{name: "plain text", data: []byte("hello world"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectImageType(tt.data); got != tt.want {
				t.Errorf("detectImageType() = %q, want %q", got, tt.want)
			}
		})
	}
}
