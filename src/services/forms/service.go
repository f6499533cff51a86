package forms

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hasnainotho/formbrick-backend/src/database"
	"github.com/hasnainotho/formbrick-backend/src/models"
)

// Sentinel errors so callers can map absence to a 404 without matching
// message text.
var (
	ErrFormNotFound     = errors.New("form not found")
	ErrQuestionNotFound = errors.New("question not found")
)

var (
	formsCollection     *mongo.Collection
	questionsCollection *mongo.Collection
)

func init() {
	if err := database.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	formsCollection = database.FormCollection
	questionsCollection = database.QuestionCollection

	if formsCollection == nil || questionsCollection == nil {
		log.Fatal("Failed to get the required collections")
	}
}

// CreateForm creates a new form with its questions
func CreateForm(ctx context.Context, req *models.CreateFormRequest) (*models.FormWithQuestions, error) {
	now := time.Now()

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	form := &models.Form{
		Title:       req.Title,
		Description: req.Description,
		FormType:    req.FormType,
		IsTemplate:  req.IsTemplate,
		IsActive:    isActive,
		Settings:    req.Settings,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	formResult, err := formsCollection.InsertOne(ctx, form)
	if err != nil {
		return nil, err
	}

	form.ID = formResult.InsertedID.(primitive.ObjectID)

	created, err := insertQuestions(ctx, form.ID, req.Questions)
	if err != nil {
		return nil, err
	}

	return &models.FormWithQuestions{
		Form:      *form,
		Questions: created,
	}, nil
}

// GetForms retrieves forms with pagination and an optional formType filter
func GetForms(ctx context.Context, formType string, page, limit int) (*models.PaginatedFormsResponse, error) {
	filter := bson.M{}
	if formType != "" {
		filter["formType"] = formType
	}

	total, err := formsCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSkip(int64(skip)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := formsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var forms []models.Form
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &models.PaginatedFormsResponse{
		Forms:      forms,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// GetFormByID retrieves a form with its questions sorted by orderIndex
func GetFormByID(ctx context.Context, formID primitive.ObjectID) (*models.FormWithQuestions, error) {
	var form models.Form
	err := formsCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	questions, err := GetFormQuestions(ctx, formID)
	if err != nil {
		return nil, err
	}

	return &models.FormWithQuestions{
		Form:      form,
		Questions: questions,
	}, nil
}

// UpdateForm replaces the form's editable attributes
func UpdateForm(ctx context.Context, formID primitive.ObjectID, req *models.UpdateFormRequest) (*models.Form, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	update := bson.M{"$set": bson.M{
		"title":       req.Title,
		"description": req.Description,
		"formType":    req.FormType,
		"isTemplate":  req.IsTemplate,
		"isActive":    isActive,
		"settings":    req.Settings,
		"updatedAt":   time.Now(),
	}}

	result := formsCollection.FindOneAndUpdate(ctx, bson.M{"_id": formID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var form models.Form
	if err := result.Decode(&form); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

// DeleteForm removes a form and all of its questions
func DeleteForm(ctx context.Context, formID primitive.ObjectID) error {
	result, err := formsCollection.DeleteOne(ctx, bson.M{"_id": formID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrFormNotFound
	}

	_, err = questionsCollection.DeleteMany(ctx, bson.M{"formId": formID})
	return err
}

// CreateQuestions appends questions to an existing form
func CreateQuestions(ctx context.Context, formID primitive.ObjectID, questions []models.Question) ([]models.Question, error) {
	var form models.Form
	if err := formsCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&form); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	return insertQuestions(ctx, formID, questions)
}

// UpdateQuestion applies an allow-listed partial update. Fields outside the
// QuestionUpdate struct can never reach the database.
func UpdateQuestion(ctx context.Context, questionID primitive.ObjectID, upd *models.QuestionUpdate) (*models.Question, error) {
	set := bson.M{}
	if upd.QuestionText != nil {
		set["questionText"] = *upd.QuestionText
	}
	if upd.QuestionType != nil {
		set["questionType"] = *upd.QuestionType
	}
	if upd.Options != nil {
		set["options"] = *upd.Options
	}
	if upd.ValidationRules != nil {
		set["validationRules"] = *upd.ValidationRules
	}
	if upd.ConditionalLogic != nil {
		set["conditionalLogic"] = upd.ConditionalLogic
	}
	if upd.IsRequired != nil {
		set["isRequired"] = *upd.IsRequired
	}
	if upd.OrderIndex != nil {
		set["orderIndex"] = *upd.OrderIndex
	}
	if upd.Section != nil {
		set["section"] = *upd.Section
	}
	if upd.HelpText != nil {
		set["helpText"] = *upd.HelpText
	}

	if len(set) == 0 {
		return nil, errors.New("no updatable fields given")
	}

	result := questionsCollection.FindOneAndUpdate(ctx, bson.M{"_id": questionID},
		bson.M{"$set": set}, options.FindOneAndUpdate().SetReturnDocument(options.After))

	var q models.Question
	if err := result.Decode(&q); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &q, nil
}

// DeleteQuestion removes a single question
func DeleteQuestion(ctx context.Context, questionID primitive.ObjectID) error {
	result, err := questionsCollection.DeleteOne(ctx, bson.M{"_id": questionID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// GetFormQuestions loads a form's questions sorted by orderIndex
func GetFormQuestions(ctx context.Context, formID primitive.ObjectID) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderIndex", Value: 1}})
	cursor, err := questionsCollection.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []models.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}

// RemapFormConditions rewrites conditional logic questionId references for a
// form through the given old->new mapping. With dryRun the proposed changes
// are returned without touching the database. Each question's logic is
// transformed into a fresh value before the write, so a half-applied pass
// never leaves an aliased document behind.
func RemapFormConditions(ctx context.Context, formID primitive.ObjectID, mappings map[string]string, dryRun bool) (*models.RemapResult, error) {
	var form models.Form
	if err := formsCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&form); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	questions, err := GetFormQuestions(ctx, formID)
	if err != nil {
		return nil, err
	}

	result := &models.RemapResult{FormID: formID.Hex(), DryRun: dryRun}

	for _, q := range questions {
		remapped, changes := q.ConditionalLogic.Remap(q.ID.Hex(), mappings)
		if len(changes) == 0 {
			continue
		}
		result.Changes = append(result.Changes, changes...)

		if !dryRun {
			_, err := questionsCollection.UpdateOne(ctx, bson.M{"_id": q.ID},
				bson.M{"$set": bson.M{"conditionalLogic": remapped}})
			if err != nil {
				log.Printf("[remap] persist question %s: %v", q.ID.Hex(), err)
			}
		}
	}

	return result, nil
}

func insertQuestions(ctx context.Context, formID primitive.ObjectID, questions []models.Question) ([]models.Question, error) {
	if len(questions) == 0 {
		return nil, nil
	}

	docs := make([]interface{}, 0, len(questions))
	created := make([]models.Question, 0, len(questions))
	for i, q := range questions {
		q.ID = primitive.NewObjectID()
		q.FormID = formID
		if q.OrderIndex == 0 {
			q.OrderIndex = i + 1
		}
		docs = append(docs, q)
		created = append(created, q)
	}

	if _, err := questionsCollection.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return created, nil
}
