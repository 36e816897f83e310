package web

// layoutTemplate wraps every page. Pages define "title" and "content".
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{template "title" .}} | WonderChile</title>
  <link rel="stylesheet" href="/static/css/style.css">
</head>
<body>
  <nav>
    <a class="logo" href="/">WonderChile</a>
    <button class="menu-toggle" onclick="toggleMenu()" aria-label="Menú">&#9776;</button>
    <ul id="nav-menu">
      <li><a href="/">Inicio</a></li>
      <li><a href="/#viajes">Viajes</a></li>
      <li><a href="/#giras">Giras de estudio</a></li>
      <li><a href="/#mujeres">Solo mujeres</a></li>
      <li><a href="/#contacto">Contacto</a></li>
      {{if .User}}
      <li class="user">Hola, {{.User.Name}}</li>
      {{if .User.IsAdmin}}
      <li class="dropdown">
        <button class="dropdown-toggle" onclick="toggleAdminDropdown()">Administración</button>
        <div class="dropdown-content">
          <a href="/admin">Panel</a>
          <a href="/admin/viajes">Viajes</a>
          <a href="/admin/viajes/agregar">Agregar viaje</a>
          <a href="/admin/en-vivo">Actividad en vivo</a>
        </div>
      </li>
      {{end}}
      <li><a href="/logout">Cerrar sesión</a></li>
      {{else}}
      <li><a href="/login">Iniciar sesión</a></li>
      {{end}}
    </ul>
  </nav>
  <main class="container">
    {{template "content" .}}
  </main>
  <footer><p>&copy; WonderChile</p></footer>
  <script src="/static/js/script.js"></script>
</body>
</html>{{end}}`

const indexTemplate = `{{define "title"}}Inicio{{end}}
{{define "content"}}
<section class="hero">
  <h1>Descubre Chile con WonderChile</h1>
  <p>Viajes, giras de estudio y experiencias solo para mujeres.</p>
</section>

{{range .Sections}}
<section id="{{.Anchor}}" class="trips">
  <h2>{{.Heading}}</h2>
  <div class="grid">
    {{range .Trips}}
    <article class="card">
      {{if .Image}}<img src="{{.Image}}" alt="{{.Title}}" loading="lazy">{{end}}
      <div class="card-content">
        <h3>{{.Title}}</h3>
        <div class="description">{{.Description}}</div>
        <p class="price">{{formatCLP .Price}}</p>
        <button class="btn" onclick="agregarAlCarrito({{.Title}})">Agregar al carrito</button>
      </div>
    </article>
    {{else}}
    <p class="empty">Pronto tendremos nuevas experiencias.</p>
    {{end}}
  </div>
</section>
{{end}}

{{if .Promotions}}
<section id="promociones">
  <h2>Promociones</h2>
  <div class="grid">
    {{range .Promotions}}
    <article class="card promo">
      <div class="card-content">
        <h3>{{.Title}}</h3>
        <p>{{.Description}}</p>
        <p class="discount">-{{.Discount}}%</p>
      </div>
    </article>
    {{end}}
  </div>
</section>
{{end}}

<section id="instagram">
  <h2>Síguenos en Instagram</h2>
  <div id="instagram-photos" class="grid"></div>
</section>

<section id="contacto">
  <h2>Contacto</h2>
  <form method="post" action="/contacto" class="form">
    <input type="text" name="nombre" placeholder="Nombre" required>
    <input type="email" name="email" placeholder="Correo" required>
    <textarea name="mensaje" placeholder="Mensaje" required></textarea>
    <button type="submit" class="btn">Enviar</button>
  </form>
</section>
{{end}}`

const loginTemplate = `{{define "title"}}Iniciar sesión{{end}}
{{define "content"}}
<section class="auth">
  <h1>Iniciar sesión</h1>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  <form method="post" action="/login" class="form">
    <input type="email" name="email" placeholder="Correo" value="{{.Email}}" required>
    <input type="password" name="password" placeholder="Contraseña" required>
    <button type="submit" class="btn">Entrar</button>
  </form>
</section>
{{end}}`

const adminTemplate = `{{define "title"}}Administración{{end}}
{{define "content"}}
<section class="admin">
  <h1>Panel de administración</h1>
  <ul class="stats">
    <li>Usuarios: {{.Stats.usuarios}}</li>
    <li>Viajes: {{.Stats.viajes}}</li>
    <li>Promociones: {{.Stats.promociones}}</li>
    <li>Contactos: {{.Stats.contactos}}</li>
    <li>Productos en carritos: {{.Stats.carrito}}</li>
  </ul>
  <h2>Mensajes de contacto</h2>
  <table>
    <tr><th>Fecha</th><th>Nombre</th><th>Correo</th><th>Mensaje</th></tr>
    {{range .Contacts}}
    <tr><td>{{.Date.Format "2006-01-02 15:04"}}</td><td>{{.Name}}</td><td>{{.Email}}</td><td>{{.Message}}</td></tr>
    {{end}}
  </table>
</section>
{{end}}`

const adminTripsTemplate = `{{define "title"}}Viajes{{end}}
{{define "content"}}
<section class="admin">
  <h1>Viajes</h1>
  <p><a class="btn" href="/admin/viajes/agregar">Agregar viaje</a></p>
  <table>
    <tr><th>ID</th><th>Título</th><th>Tipo</th><th>Precio</th><th></th></tr>
    {{range .Trips}}
    <tr>
      <td>{{.ID}}</td><td>{{.Title}}</td><td>{{.Type}}</td><td>{{formatCLP .Price}}</td>
      <td>
        <form method="post" action="/admin/viajes/{{.ID}}/delete">
          <button type="submit" class="btn danger">Eliminar</button>
        </form>
      </td>
    </tr>
    {{end}}
  </table>
</section>
{{end}}`

const addTripTemplate = `{{define "title"}}Agregar viaje{{end}}
{{define "content"}}
<section class="admin">
  <h1>Agregar viaje</h1>
  {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
  <form method="post" action="/admin/viajes/agregar" enctype="multipart/form-data" class="form">
    <input type="text" name="titulo" placeholder="Título" required>
    <textarea name="descripcion" placeholder="Descripción (markdown)"></textarea>
    <input type="number" name="precio" placeholder="Precio" min="0" step="any" required>
    <select name="tipo">
      <option value="viaje">Viaje</option>
      <option value="gira">Gira de estudio</option>
      <option value="mujeres">Solo mujeres</option>
    </select>
    <input type="file" name="imagen" accept="image/*">
    <button type="submit" class="btn">Guardar</button>
  </form>
</section>
{{end}}`

// scriptJS runs in the visitor's browser. The gallery is rendered on the
// server, so the script only handles the cart and the menus.
const scriptJS = `function agregarAlCarrito(paquete) {
    fetch('/verificar_sesion')
    .then(response => response.json())
    .then(data => {
        if (!data.logged_in) {
            alert('Debes iniciar sesión para agregar productos al carrito');
            window.location.href = '/login';
            return;
        }
        return fetch('/agregar_carrito', {
            method: 'POST',
            headers: {'Content-Type': 'application/json'},
            body: JSON.stringify({paquete: paquete})
        }).then(response => response.json());
    })
    .then(data => {
        if (data && data.success) {
            alert('¡Producto agregado al carrito!');
        } else if (data) {
            alert('Error al agregar al carrito: ' + data.message);
        }
    })
    .catch(error => {
        console.error('Error:', error);
        alert('Error al procesar la solicitud');
    });
}

function toggleMenu() {
    document.getElementById('nav-menu').classList.toggle('show');
}

function toggleAdminDropdown() {
    const content = document.querySelector('.dropdown-content');
    if (content) {
        content.classList.toggle('show');
    }
}

document.addEventListener('click', function (event) {
    const nav = document.querySelector('nav');
    const navMenu = document.getElementById('nav-menu');
    if (nav && navMenu && !nav.contains(event.target)) {
        navMenu.classList.remove('show');
    }

    const dropdown = document.querySelector('.dropdown');
    const dropdownContent = document.querySelector('.dropdown-content');
    if (dropdown && dropdownContent && !dropdown.contains(event.target)) {
        dropdownContent.classList.remove('show');
    }
});
`

const styleCSS = `:root {
  --primary: #0b6e4f;
  --accent: #f4a259;
  --bg: #fafafa;
  --text: #222;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; background: var(--bg); color: var(--text); }
nav { display: flex; align-items: center; justify-content: space-between; padding: 0.75rem 1.5rem; background: var(--primary); color: #fff; position: relative; }
nav a { color: #fff; text-decoration: none; }
.logo { font-weight: 700; font-size: 1.25rem; }
.menu-toggle { display: none; background: none; border: 0; color: #fff; font-size: 1.5rem; cursor: pointer; }
#nav-menu { display: flex; gap: 1rem; list-style: none; margin: 0; padding: 0; align-items: center; }
.dropdown { position: relative; }
.dropdown-toggle { background: none; border: 1px solid #fff; color: #fff; padding: 0.25rem 0.75rem; cursor: pointer; }
.dropdown-content { display: none; position: absolute; right: 0; background: #fff; min-width: 12rem; box-shadow: 0 4px 12px rgba(0,0,0,.15); z-index: 10; }
.dropdown-content a { display: block; color: var(--text); padding: 0.5rem 1rem; }
.dropdown-content.show { display: block; }
.container { max-width: 1100px; margin: 0 auto; padding: 1.5rem; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 1rem; }
.card { background: #fff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 6px rgba(0,0,0,.08); }
.card img { width: 100%; height: 180px; object-fit: cover; }
.card-content { padding: 0.75rem 1rem; }
.price, .discount { font-weight: 700; color: var(--primary); }
.btn { background: var(--accent); border: 0; padding: 0.5rem 1rem; border-radius: 4px; cursor: pointer; color: #222; text-decoration: none; }
.btn.danger { background: #c0392b; color: #fff; }
.form { display: flex; flex-direction: column; gap: 0.75rem; max-width: 480px; }
.form input, .form textarea, .form select { padding: 0.5rem; border: 1px solid #ccc; border-radius: 4px; }
.error { color: #c0392b; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: 0.5rem; border-bottom: 1px solid #ddd; }
footer { text-align: center; padding: 2rem; color: #777; }
@media (max-width: 768px) {
  .menu-toggle { display: block; }
  #nav-menu { display: none; position: absolute; top: 100%; left: 0; right: 0; flex-direction: column; background: var(--primary); padding: 1rem; }
  #nav-menu.show { display: flex; }
}
`
