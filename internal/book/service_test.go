package book_test

import (
	"context"
	"testing"

	"booklist/internal/book"
	"booklist/internal/book/mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	service := book.NewService(mockRepo)

	var inserted book.Book
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, b *book.Book) error {
			inserted = *b
			return nil
		})

	b, err := service.Create(context.Background(), testSessionID, book.NewBook{
		Title:  "Dune",
		Author: "Frank Herbert",
		Genre:  "SciFi",
	})
	require.NoError(t, err)

	_, err = uuid.Parse(b.ID)
	assert.NoError(t, err, "generated id must be a UUID")
	assert.Equal(t, testSessionID, inserted.SessionID)
	assert.Equal(t, b.ID, inserted.ID)
}

func TestService_Update_PatchSemantics(t *testing.T) {
	tests := []struct {
		name  string
		patch book.Patch
		want  book.Book
	}{
		{
			name:  "single field",
			patch: book.Patch{Genre: strPtr("Coding")},
			want:  book.Book{Title: "T", Author: "A", Genre: "Coding"},
		},
		{
			name:  "all fields",
			patch: book.Patch{Title: strPtr("T2"), Author: strPtr("A2"), Genre: strPtr("G2")},
			want:  book.Book{Title: "T2", Author: "A2", Genre: "G2"},
		},
		{
			name:  "empty patch keeps everything",
			patch: book.Patch{},
			want:  book.Book{Title: "T", Author: "A", Genre: "G"},
		},
		{
			name:  "explicit empty string overwrites",
			patch: book.Patch{Title: strPtr("")},
			want:  book.Book{Title: "", Author: "A", Genre: "G"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockRepo := mocks.NewMockRepository(ctrl)
			service := book.NewService(mockRepo)

			b := book.Book{ID: testBookID, Title: "T", Author: "A", Genre: "G", SessionID: testSessionID}

			var updated book.Book
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, got *book.Book) error {
					updated = *got
					return nil
				})

			require.NoError(t, service.Update(context.Background(), &b, tt.patch))

			assert.Equal(t, tt.want.Title, updated.Title)
			assert.Equal(t, tt.want.Author, updated.Author)
			assert.Equal(t, tt.want.Genre, updated.Genre)
			assert.Equal(t, testBookID, updated.ID, "id is immutable")
			assert.Equal(t, testSessionID, updated.SessionID, "ownership is immutable")
		})
	}
}

func TestService_Delete_TargetsLocatedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	service := book.NewService(mockRepo)

	b := testBook
	mockRepo.EXPECT().Delete(gomock.Any(), b.ID, b.SessionID).Return(nil)

	assert.NoError(t, service.Delete(context.Background(), &b))
}

func strPtr(s string) *string { return &s }
