package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"nigerland_backend/internals/features/books/dto"
	"nigerland_backend/internals/features/books/model"
	helper "nigerland_backend/internals/helpers"
)

type BookController struct {
	DB *gorm.DB
}

func NewBookController(db *gorm.DB) *BookController {
	return &BookController{DB: db}
}

func applyBookRequest(b *model.Book, req *dto.BookRequest) {
	b.BookTitle = strings.TrimSpace(req.Title)
	b.BookAuthor = strings.TrimSpace(req.Author)
	b.BookDescription = strings.TrimSpace(req.Description)
	b.BookPrice = req.Price
	b.BookCategory = strings.TrimSpace(req.Category)
	b.BookImage = strings.TrimSpace(req.Image)
	b.BookPdfURL = strings.TrimSpace(req.PdfURL)
	if req.IsPaid != nil {
		b.BookIsPaid = *req.IsPaid
	} else {
		b.BookIsPaid = true
	}
}

// GET /api/books (public catalog) & GET /api/admin/books
func (ctrl *BookController) ListBooks(c *fiber.Ctx) error {
	var books []model.Book
	if err := ctrl.DB.Order("created_at DESC").Find(&books).Error; err != nil {
		log.Printf("[ERROR] list books: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch books")
	}
	return helper.JsonList(c, "Books fetched", books)
}

// GET /api/books/:id
func (ctrl *BookController) GetBook(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid book id")
	}
	var book model.Book
	if err := ctrl.DB.First(&book, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch book")
	}
	return helper.JsonOK(c, "Book fetched", book)
}

// POST /api/admin/books
func (ctrl *BookController) CreateBook(c *fiber.Ctx) error {
	var req dto.BookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var book model.Book
	applyBookRequest(&book, &req)
	if err := ctrl.DB.Create(&book).Error; err != nil {
		log.Printf("[ERROR] create book: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create book")
	}
	return helper.JsonCreated(c, "Book created", book)
}

// PUT /api/admin/books/:id
// Full-record replace: the request is validated with the same rules as
// create, so a partial payload fails instead of zeroing columns.
func (ctrl *BookController) UpdateBook(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid book id")
	}

	var req dto.BookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var book model.Book
	if err := ctrl.DB.First(&book, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch book")
	}

	applyBookRequest(&book, &req)
	if err := ctrl.DB.Save(&book).Error; err != nil {
		log.Printf("[ERROR] update book: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update book")
	}
	return helper.JsonUpdated(c, "Book updated", book)
}

// DELETE /api/admin/books/:id
// No cascade: purchases referencing the book remain untouched.
func (ctrl *BookController) DeleteBook(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid book id")
	}

	var book model.Book
	if err := ctrl.DB.First(&book, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Book not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch book")
	}
	if err := ctrl.DB.Delete(&book).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete book")
	}
	return helper.JsonDeleted(c, "Book deleted", fiber.Map{"book_id": id})
}
